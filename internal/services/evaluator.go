package services

import (
	"context"
	"log"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

// EvaluatorService produces the assistant's reply for one chat turn. On the
// candidate persona the reply passes through the judge and is regenerated
// at most once when rejected.
type EvaluatorService interface {
	Reply(ctx context.Context, sess *models.Session, message string) (string, error)
}

type evaluatorService struct {
	client        CompletionClient
	judge         Judge
	promptBuilder *PromptBuilder
}

// NewEvaluatorService builds the reply flow. A nil judge disables the
// quality gate.
func NewEvaluatorService(client CompletionClient, judge Judge) EvaluatorService {
	return &evaluatorService{
		client:        client,
		judge:         judge,
		promptBuilder: NewPromptBuilder(),
	}
}

func (e *evaluatorService) Reply(ctx context.Context, sess *models.Session, message string) (string, error) {
	systemPrompt := e.promptBuilder.SystemPrompt(sess)
	history := sess.History()

	reply, err := e.client.Complete(ctx, BuildMessages(systemPrompt, history, message))
	if err != nil {
		log.Printf("❌ Chat completion failed: %v", err)
		return "", err
	}

	if e.judge == nil || sess.Mode.Persona() != models.PersonaCandidate {
		return reply, nil
	}

	verdict, err := e.judge.Evaluate(ctx, sess, message, reply)
	if err != nil {
		log.Printf("⚠️ Judge unavailable, returning unjudged reply: %v", err)
		return reply, nil
	}

	log.Printf("🤖 Judge verdict: acceptable=%t professionalism=%d relevance=%d",
		verdict.IsAcceptable, verdict.ProfessionalismScore, verdict.RelevanceScore)

	if verdict.IsAcceptable {
		return reply, nil
	}

	log.Printf("🔄 Reply rejected, regenerating: %s", verdict.Feedback)

	rerunPrompt := e.promptBuilder.BuildRerunPrompt(systemPrompt, reply, verdict.Feedback)
	retried, err := e.client.Complete(ctx, BuildMessages(rerunPrompt, history, message))
	if err != nil {
		log.Printf("❌ Regeneration failed, returning original reply: %v", err)
		return reply, nil
	}

	return retried, nil
}
