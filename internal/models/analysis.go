package models

// ATSResult is built fresh for every analysis request.
type ATSResult struct {
	Score           int      `json:"ats_score"`
	KeywordMatches  []string `json:"keyword_matches"`
	MissingKeywords []string `json:"missing_keywords"`
	Recommendations []string `json:"recommendations"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
}

func (r ATSResult) Clone() ATSResult {
	return ATSResult{
		Score:           r.Score,
		KeywordMatches:  append([]string{}, r.KeywordMatches...),
		MissingKeywords: append([]string{}, r.MissingKeywords...),
		Recommendations: append([]string{}, r.Recommendations...),
		Strengths:       append([]string{}, r.Strengths...),
		Weaknesses:      append([]string{}, r.Weaknesses...),
	}
}

// EvaluationVerdict is the judge's answer for a single candidate reply.
type EvaluationVerdict struct {
	IsAcceptable         bool   `json:"is_acceptable"`
	Feedback             string `json:"feedback"`
	ProfessionalismScore int    `json:"professionalism_score"`
	RelevanceScore       int    `json:"relevance_score"`
}
