package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

// Judge decides whether a candidate-persona reply may be shown.
type Judge interface {
	Evaluate(ctx context.Context, sess *models.Session, message, reply string) (*models.EvaluationVerdict, error)
}

var verdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"is_acceptable": {
			Type:        genai.TypeBoolean,
			Description: "Whether the candidate's latest response is acceptable.",
		},
		"feedback": {
			Type:        genai.TypeString,
			Description: "Short explanation of the decision.",
		},
		"professionalism_score": {
			Type:        genai.TypeInteger,
			Description: "Professionalism of the response from 1 to 10.",
		},
		"relevance_score": {
			Type:        genai.TypeInteger,
			Description: "Relevance of the response to the role from 1 to 10.",
		},
	},
	Required: []string{"is_acceptable", "feedback"},
}

type geminiJudge struct {
	gemini        GeminiService
	model         string
	promptBuilder *PromptBuilder
}

// NewGeminiJudge asks a Gemini model for a schema-constrained verdict.
func NewGeminiJudge(gemini GeminiService, model string) Judge {
	return &geminiJudge{
		gemini:        gemini,
		model:         model,
		promptBuilder: NewPromptBuilder(),
	}
}

func (j *geminiJudge) Evaluate(ctx context.Context, sess *models.Session, message, reply string) (*models.EvaluationVerdict, error) {
	systemPrompt := j.promptBuilder.BuildJudgeSystemPrompt(sess.CandidateName, sess.ResumeText, sess.JobDescription)
	userPrompt := j.promptBuilder.BuildJudgeUserPrompt(sess.History(), message, reply)

	response, err := j.gemini.GenerateJSON(ctx, j.model, systemPrompt, userPrompt, verdictSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verdict: %w", err)
	}

	return parseVerdict(response)
}

type completionJudge struct {
	client        CompletionClient
	promptBuilder *PromptBuilder
}

// NewCompletionJudge reuses a plain CompletionClient as the judge when no
// Gemini key is configured.
func NewCompletionJudge(client CompletionClient) Judge {
	return &completionJudge{
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

func (j *completionJudge) Evaluate(ctx context.Context, sess *models.Session, message, reply string) (*models.EvaluationVerdict, error) {
	messages := []models.ChatMessage{
		{Role: models.RoleSystem, Content: j.promptBuilder.BuildJudgeSystemPrompt(sess.CandidateName, sess.ResumeText, sess.JobDescription)},
		{Role: models.RoleUser, Content: j.promptBuilder.BuildJudgeUserPrompt(sess.History(), message, reply)},
	}

	response, err := j.client.Complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verdict: %w", err)
	}

	return parseVerdict(response)
}

type verdictPayload struct {
	IsAcceptable         *bool  `json:"is_acceptable"`
	Feedback             string `json:"feedback"`
	ProfessionalismScore int    `json:"professionalism_score"`
	RelevanceScore       int    `json:"relevance_score"`
}

// parseVerdict rejects verdicts without an is_acceptable decision.
func parseVerdict(response string) (*models.EvaluationVerdict, error) {
	var payload verdictPayload
	if err := parseJSONResponse(response, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse verdict: %w", err)
	}
	if payload.IsAcceptable == nil {
		return nil, fmt.Errorf("failed to parse verdict: missing is_acceptable\nResponse: %s", response)
	}

	return &models.EvaluationVerdict{
		IsAcceptable:         *payload.IsAcceptable,
		Feedback:             payload.Feedback,
		ProfessionalismScore: payload.ProfessionalismScore,
		RelevanceScore:       payload.RelevanceScore,
	}, nil
}

func parseJSONResponse(response string, target interface{}) error {
	// The model might wrap the JSON in markdown
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w\nResponse: %s", err, response)
	}

	return nil
}

// extractJSON strips markdown fences and surrounding prose from a JSON reply
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}
