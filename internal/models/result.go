package models

type JobDescriptionRequest struct {
	JobDescription string `json:"job_description"`
}

type SetModeRequest struct {
	Mode string `json:"mode"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type UploadResumeResponse struct {
	Success       bool   `json:"success"`
	CandidateName string `json:"candidate_name"`
	Preview       string `json:"preview"`
	Message       string `json:"message"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SetModeResponse struct {
	Success     bool          `json:"success"`
	Mode        Mode          `json:"mode"`
	Message     string        `json:"message"`
	ChatHistory []ChatMessage `json:"chat_history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type HistoryResponse struct {
	Mode        Mode          `json:"mode"`
	ChatHistory []ChatMessage `json:"chat_history"`
}

type ReadinessResponse struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

type ATSAnalysisResponse struct {
	ATSResult
	Report string `json:"report"`
}
