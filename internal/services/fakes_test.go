package services

import (
	"context"
	"sync"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

type fakeCompletion struct {
	mu      sync.Mutex
	replies []string
	errs    []error
	calls   [][]models.ChatMessage
}

func (f *fakeCompletion) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := make([]models.ChatMessage, len(messages))
	copy(copied, messages)
	f.calls = append(f.calls, copied)

	i := len(f.calls) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "default reply", nil
}

func (f *fakeCompletion) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeJudge struct {
	verdict  *models.EvaluationVerdict
	err      error
	calls    int
	lastSeen string
}

func (f *fakeJudge) Evaluate(ctx context.Context, sess *models.Session, message, reply string) (*models.EvaluationVerdict, error) {
	f.calls++
	f.lastSeen = reply
	if f.err != nil {
		return nil, f.err
	}
	return f.verdict, nil
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(filePath string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func readySession(mode models.Mode) *models.Session {
	sess := models.NewSession("test")
	sess.SetResume("Jane Doe\nSenior Go Engineer\n8 years building APIs", "Jane Doe")
	sess.SetJobDescription("We are hiring a backend engineer with Go and Postgres experience.")
	sess.SetMode(mode)
	return sess
}
