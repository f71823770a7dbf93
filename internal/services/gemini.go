package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/recruitment-assistant/internal/models"
)

const geminiProvider = "gemini"

// GeminiService is a CompletionClient that can also answer with JSON
// constrained by a schema.
type GeminiService interface {
	CompletionClient
	GenerateJSON(ctx context.Context, model, systemPrompt, userPrompt string, schema *genai.Schema) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements CompletionClient. System messages become the system
// instruction and assistant turns are sent with the model role.
func (g *geminiService) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	contents, config := buildGeminiRequest(messages)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", &CompletionError{Provider: geminiProvider, Err: err}
	}

	return responseText(resp)
}

// GenerateJSON implements GeminiService.
func (g *geminiService) GenerateJSON(ctx context.Context, model, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	if model == "" {
		model = g.modelName
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", &CompletionError{Provider: geminiProvider, Err: err}
	}

	return responseText(resp)
}

// buildGeminiRequest sends a system-only conversation, such as the ATS
// prompt, as the user content itself since Gemini requires at least one.
func buildGeminiRequest(messages []models.ChatMessage) ([]*genai.Content, *genai.GenerateContentConfig) {
	systemPrompt, contents := toGeminiContents(messages)

	config := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		if len(contents) == 0 {
			contents = genai.Text(systemPrompt)
		} else {
			config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
		}
	}

	return contents, config
}

func toGeminiContents(messages []models.ChatMessage) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			system = append(system, msg.Content)
		case models.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	return strings.Join(system, "\n\n"), contents
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", &CompletionError{Provider: geminiProvider, Err: errors.New("no response generated (nil response)")}
	}

	text := resp.Text()
	if text == "" {
		return "", &CompletionError{Provider: geminiProvider, Err: errors.New("no text content in response")}
	}

	return text, nil
}
