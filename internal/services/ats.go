package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const (
	defaultATSScore      = 50
	atsRecommendationLen = 500
)

var atsScorePattern = regexp.MustCompile(`(?i)(\d+)/100|(\d+)%|Score[:\s]*(\d+)`)

// ReplyParser turns the model's analysis text into an ATSResult.
type ReplyParser interface {
	Parse(reply string) models.ATSResult
}

type freeTextParser struct{}

// NewFreeTextParser extracts only the score from the reply; the list fields
// carry fixed placeholders and the reply itself becomes the recommendation.
func NewFreeTextParser() ReplyParser {
	return freeTextParser{}
}

func (freeTextParser) Parse(reply string) models.ATSResult {
	return models.ATSResult{
		Score:           ExtractScore(reply),
		KeywordMatches:  []string{"Skills analysis completed"},
		MissingKeywords: []string{"Detailed in analysis"},
		Recommendations: []string{truncateRunes(reply, atsRecommendationLen)},
		Strengths:       []string{"Resume processed successfully"},
		Weaknesses:      []string{"See detailed analysis"},
	}
}

// ExtractScore returns the first "N/100", "N%" or "Score: N" value in the
// reply, clamped to 0-100, or 50 when none is present.
func ExtractScore(reply string) int {
	match := atsScorePattern.FindStringSubmatch(reply)
	if match == nil {
		return defaultATSScore
	}

	for _, group := range match[1:] {
		if group == "" {
			continue
		}
		score, err := strconv.Atoi(group)
		if err != nil {
			return 100
		}
		if score > 100 {
			return 100
		}
		return score
	}

	return defaultATSScore
}

type ATSScorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) models.ATSResult
}

type atsScorer struct {
	client        CompletionClient
	parser        ReplyParser
	promptBuilder *PromptBuilder
}

func NewATSScorer(client CompletionClient, parser ReplyParser) ATSScorer {
	if parser == nil {
		parser = NewFreeTextParser()
	}
	return &atsScorer{
		client:        client,
		parser:        parser,
		promptBuilder: NewPromptBuilder(),
	}
}

// Score never fails: a model error yields a zero score with the error in
// the recommendations.
func (s *atsScorer) Score(ctx context.Context, resumeText, jobDescription string) models.ATSResult {
	prompt := s.promptBuilder.BuildATSPrompt(resumeText, jobDescription)

	reply, err := s.client.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: prompt},
	})
	if err != nil {
		log.Printf("❌ ATS analysis failed: %v", err)
		return models.ATSResult{
			Score:           0,
			KeywordMatches:  []string{},
			MissingKeywords: []string{},
			Recommendations: []string{fmt.Sprintf("Error in analysis: %v", err)},
			Strengths:       []string{},
			Weaknesses:      []string{},
		}
	}

	result := s.parser.Parse(reply)
	log.Printf("✅ ATS analysis completed with score %d", result.Score)

	return result
}

// truncateRunes keeps the first n runes and marks the cut with "...".
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
