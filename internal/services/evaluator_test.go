package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

func TestEvaluator_InterviewerSkipsJudge(t *testing.T) {
	client := &fakeCompletion{replies: []string{"Welcome! Tell me about yourself."}}
	judge := &fakeJudge{verdict: &models.EvaluationVerdict{IsAcceptable: false}}
	evaluator := NewEvaluatorService(client, judge)

	sess := readySession(models.ModeJobSeeker)
	sess.AppendTurn(models.RoleUser, "Hi")
	sess.AppendTurn(models.RoleAssistant, "Hello")

	reply, err := evaluator.Reply(context.Background(), sess, "Let's begin")

	require.NoError(t, err)
	assert.Equal(t, "Welcome! Tell me about yourself.", reply)
	assert.Equal(t, 0, judge.calls)
	require.Equal(t, 1, client.callCount())

	messages := client.calls[0]
	require.Len(t, messages, 4)
	assert.Equal(t, models.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "HR interviewer")
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "Hi"}, messages[1])
	assert.Equal(t, models.ChatMessage{Role: models.RoleAssistant, Content: "Hello"}, messages[2])
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "Let's begin"}, messages[3])
}

func TestEvaluator_AcceptedReply(t *testing.T) {
	client := &fakeCompletion{replies: []string{"I led the migration to Go."}}
	judge := &fakeJudge{verdict: &models.EvaluationVerdict{IsAcceptable: true, Feedback: "good"}}
	evaluator := NewEvaluatorService(client, judge)

	reply, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "Tell me about a project")

	require.NoError(t, err)
	assert.Equal(t, "I led the migration to Go.", reply)
	assert.Equal(t, 1, client.callCount())
	assert.Equal(t, 1, judge.calls)
	assert.Equal(t, "I led the migration to Go.", judge.lastSeen)
}

func TestEvaluator_RejectedReplyIsRegeneratedOnce(t *testing.T) {
	client := &fakeCompletion{replies: []string{"lol idk", "In 2022 I led a migration that cut latency by 40%."}}
	judge := &fakeJudge{verdict: &models.EvaluationVerdict{IsAcceptable: false, Feedback: "Unprofessional tone"}}
	evaluator := NewEvaluatorService(client, judge)

	reply, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "Tell me about a project")

	require.NoError(t, err)
	assert.Equal(t, "In 2022 I led a migration that cut latency by 40%.", reply)
	assert.Equal(t, 2, client.callCount())
	assert.Equal(t, 1, judge.calls)

	first := client.calls[0][0].Content
	second := client.calls[1][0].Content
	assert.NotEqual(t, first, second)
	assert.Contains(t, second, first)
	assert.Contains(t, second, "Unprofessional tone")
	assert.Contains(t, second, "lol idk")
	assert.Equal(t, "Tell me about a project", client.calls[1][len(client.calls[1])-1].Content)
}

func TestEvaluator_JudgeFailureReturnsOriginal(t *testing.T) {
	client := &fakeCompletion{replies: []string{"original"}}
	judge := &fakeJudge{err: errors.New("judge down")}
	evaluator := NewEvaluatorService(client, judge)

	reply, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "question")

	require.NoError(t, err)
	assert.Equal(t, "original", reply)
	assert.Equal(t, 1, client.callCount())
}

func TestEvaluator_RetryFailureReturnsOriginal(t *testing.T) {
	client := &fakeCompletion{
		replies: []string{"original"},
		errs:    []error{nil, &CompletionError{Provider: "test", Err: errors.New("timeout")}},
	}
	judge := &fakeJudge{verdict: &models.EvaluationVerdict{IsAcceptable: false, Feedback: "vague"}}
	evaluator := NewEvaluatorService(client, judge)

	reply, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "question")

	require.NoError(t, err)
	assert.Equal(t, "original", reply)
	assert.Equal(t, 2, client.callCount())
}

func TestEvaluator_PrimaryFailure(t *testing.T) {
	client := &fakeCompletion{errs: []error{&CompletionError{Provider: "test", Err: errors.New("unauthorized")}}}
	judge := &fakeJudge{verdict: &models.EvaluationVerdict{IsAcceptable: true}}
	evaluator := NewEvaluatorService(client, judge)

	_, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "question")

	var completionErr *CompletionError
	require.ErrorAs(t, err, &completionErr)
	assert.Equal(t, 0, judge.calls)
}

func TestEvaluator_NilJudge(t *testing.T) {
	client := &fakeCompletion{replies: []string{"answer"}}
	evaluator := NewEvaluatorService(client, nil)

	reply, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "question")

	require.NoError(t, err)
	assert.Equal(t, "answer", reply)
	assert.Equal(t, 1, client.callCount())
}
