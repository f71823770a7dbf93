package services

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const azureProvider = "azure openai"

type azureOpenAIClient struct {
	client     openai.Client
	deployment string
}

// NewAzureOpenAIClient talks to an Azure OpenAI chat completions deployment.
// Extra options are applied after the endpoint and key.
func NewAzureOpenAIClient(apiKey, endpoint, apiVersion, deployment string, opts ...option.RequestOption) CompletionClient {
	options := append([]option.RequestOption{
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
	}, opts...)

	return &azureOpenAIClient{
		client:     openai.NewClient(options...),
		deployment: deployment,
	}
}

func (a *azureOpenAIClient) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.deployment),
		Messages: toOpenAIMessages(messages),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Error()
			}
			return "", &CompletionError{Provider: azureProvider, StatusCode: apiErr.StatusCode, Err: errors.New(msg)}
		}
		return "", &CompletionError{Provider: azureProvider, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &CompletionError{Provider: azureProvider, Err: errors.New("no choices returned by model")}
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []models.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case models.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}
