package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/recruitment-assistant/internal/config"
)

// BuildAssistant wires the completion clients, judge and scorer selected by
// the configuration.
func BuildAssistant(ctx context.Context, cfg *config.Config) (AssistantService, error) {
	var gemini GeminiService
	if cfg.Gemini.APIKey != "" {
		svc, err := NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		gemini = svc
	}

	var primary CompletionClient
	switch cfg.LLM.Provider {
	case config.ProviderAzure:
		primary = NewAzureOpenAIClient(cfg.Azure.APIKey, cfg.Azure.Endpoint, cfg.Azure.APIVersion, cfg.Azure.Deployment)
		log.Printf("🤖 Primary model: Azure OpenAI deployment %s", cfg.Azure.Deployment)
	case config.ProviderGemini:
		if gemini == nil {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for provider %q", config.ProviderGemini)
		}
		primary = gemini
		log.Printf("🤖 Primary model: Gemini %s", cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}

	var judge Judge
	switch {
	case !cfg.Evaluator.Enabled:
		log.Println("⚠️ Reply evaluator disabled")
	case gemini != nil:
		judge = NewGeminiJudge(gemini, cfg.Gemini.JudgeModel)
		log.Printf("🤖 Judge model: Gemini %s", cfg.Gemini.JudgeModel)
	default:
		judge = NewCompletionJudge(primary)
		log.Println("⚠️ GEMINI_API_KEY not set, judging replies with the primary model")
	}

	return NewAssistantService(
		NewDocumentExtractor(),
		NewEvaluatorService(primary, judge),
		NewATSScorer(primary, NewFreeTextParser()),
	), nil
}
