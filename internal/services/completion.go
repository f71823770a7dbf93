package services

import (
	"context"
	"errors"
	"fmt"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const completionErrorPrefix = "❌ I apologize, but I encountered an error: "

// CompletionClient sends one ordered conversation to a hosted chat model
// and returns the text of its reply.
type CompletionClient interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// CompletionError wraps every transport, auth or rate-limit failure raised
// by a CompletionClient.
type CompletionError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// DisplayMessage is the user-facing rendering of the failure.
func (e *CompletionError) DisplayMessage() string {
	return completionErrorPrefix + e.Err.Error()
}

// DisplayError renders any error for a chat transcript.
func DisplayError(err error) string {
	var completionErr *CompletionError
	if errors.As(err, &completionErr) {
		return completionErr.DisplayMessage()
	}
	return completionErrorPrefix + err.Error()
}

// BuildMessages prepends the system prompt to the history and appends the
// new user message.
func BuildMessages(systemPrompt string, history []models.ChatMessage, message string) []models.ChatMessage {
	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, models.ChatMessage{Role: models.RoleUser, Content: message})
	return messages
}
