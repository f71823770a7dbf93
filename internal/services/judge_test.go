package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

func TestCompletionJudge_ParsesFencedJSON(t *testing.T) {
	client := &fakeCompletion{replies: []string{"Here you go:\n```json\n{\"is_acceptable\": false, \"feedback\": \"Off topic\", \"professionalism_score\": 6, \"relevance_score\": 3}\n```"}}
	judge := NewCompletionJudge(client)

	sess := readySession(models.ModeRecruiter)
	verdict, err := judge.Evaluate(context.Background(), sess, "Why Go?", "I like pizza")

	require.NoError(t, err)
	assert.False(t, verdict.IsAcceptable)
	assert.Equal(t, "Off topic", verdict.Feedback)
	assert.Equal(t, 6, verdict.ProfessionalismScore)
	assert.Equal(t, 3, verdict.RelevanceScore)

	require.Equal(t, 1, client.callCount())
	require.Len(t, client.calls[0], 2)
	assert.Equal(t, models.RoleSystem, client.calls[0][0].Role)
	assert.Contains(t, client.calls[0][0].Content, "Jane Doe")
	assert.Contains(t, client.calls[0][1].Content, "I like pizza")
}

func TestCompletionJudge_InvalidJSON(t *testing.T) {
	client := &fakeCompletion{replies: []string{"looks fine to me"}}
	judge := NewCompletionJudge(client)

	_, err := judge.Evaluate(context.Background(), readySession(models.ModeRecruiter), "q", "r")

	assert.Error(t, err)
}

func TestCompletionJudge_MissingDecision(t *testing.T) {
	client := &fakeCompletion{replies: []string{`{"feedback": "Looks good"}`}}
	judge := NewCompletionJudge(client)

	verdict, err := judge.Evaluate(context.Background(), readySession(models.ModeRecruiter), "q", "r")

	assert.Nil(t, verdict)
	assert.ErrorContains(t, err, "is_acceptable")
}

func TestEvaluator_VerdictWithoutDecisionKeepsReply(t *testing.T) {
	primary := &fakeCompletion{replies: []string{"first"}}
	judgeClient := &fakeCompletion{replies: []string{`{"feedback": "Looks good"}`}}
	evaluator := NewEvaluatorService(primary, NewCompletionJudge(judgeClient))

	reply, err := evaluator.Reply(context.Background(), readySession(models.ModeRecruiter), "Why Go?")

	require.NoError(t, err)
	assert.Equal(t, "first", reply)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 1, judgeClient.callCount())
}

type fakeGemini struct {
	fakeCompletion
	jsonReply    string
	jsonErr      error
	model        string
	systemPrompt string
	userPrompt   string
	schema       *genai.Schema
}

func (f *fakeGemini) GenerateJSON(ctx context.Context, model, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	f.model = model
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	f.schema = schema
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	return f.jsonReply, nil
}

func TestGeminiJudge_Evaluate(t *testing.T) {
	tests := []struct {
		name           string
		jsonReply      string
		jsonErr        error
		wantErr        bool
		wantAcceptable bool
		wantFeedback   string
	}{
		{
			name:           "accepted",
			jsonReply:      `{"is_acceptable": true, "feedback": "Clear answer", "professionalism_score": 9, "relevance_score": 8}`,
			wantAcceptable: true,
			wantFeedback:   "Clear answer",
		},
		{
			name:           "rejected",
			jsonReply:      `{"is_acceptable": false, "feedback": "Breaks character"}`,
			wantAcceptable: false,
			wantFeedback:   "Breaks character",
		},
		{
			name:      "missing decision",
			jsonReply: `{"feedback": "Looks good"}`,
			wantErr:   true,
		},
		{
			name:      "not json",
			jsonReply: "acceptable",
			wantErr:   true,
		},
		{
			name:    "model failure",
			jsonErr: errors.New("quota exceeded"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &fakeGemini{jsonReply: tt.jsonReply, jsonErr: tt.jsonErr}
			judge := NewGeminiJudge(gemini, "gemini-2.5-flash")

			sess := readySession(models.ModeRecruiter)
			sess.AppendTurn(models.RoleUser, "Tell me about yourself")
			sess.AppendTurn(models.RoleAssistant, "I build APIs in Go")

			verdict, err := judge.Evaluate(context.Background(), sess, "Why Postgres?", "It is reliable")

			assert.Equal(t, "gemini-2.5-flash", gemini.model)
			assert.Same(t, verdictSchema, gemini.schema)
			assert.Contains(t, gemini.systemPrompt, "Jane Doe")
			assert.Contains(t, gemini.userPrompt, "I build APIs in Go")
			assert.Contains(t, gemini.userPrompt, "It is reliable")
			assert.Equal(t, 0, gemini.callCount())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, verdict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAcceptable, verdict.IsAcceptable)
			assert.Equal(t, tt.wantFeedback, verdict.Feedback)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", in: "Sure! {\"a\":1} Done.", want: `{"a":1}`},
		{name: "array", in: "list: [1,2]", want: "[1,2]"},
		{name: "no json", in: "  nothing  ", want: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
