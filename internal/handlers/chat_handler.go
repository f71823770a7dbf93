package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruitment-assistant/internal/models"
	"alfredoptarigan/recruitment-assistant/internal/services"
)

type ChatHandler struct {
	assistant services.AssistantService
}

func NewChatHandler(assistant services.AssistantService) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

func (h *ChatHandler) HandleJobDescription(c *fiber.Ctx) error {
	var req models.JobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	message := h.assistant.SetJobDescription(currentSession(c), req.JobDescription)

	return c.JSON(models.StatusResponse{Success: true, Message: message})
}

func (h *ChatHandler) HandleSetMode(c *fiber.Ctx) error {
	var req models.SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session := currentSession(c)
	message, err := h.assistant.SetMode(session, req.Mode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.SetModeResponse{
		Success:     true,
		Mode:        session.Mode,
		Message:     message,
		ChatHistory: session.History(),
	})
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	reply, err := h.assistant.Chat(c.UserContext(), currentSession(c), req.Message)
	if err != nil {
		if errors.Is(err, services.ErrResumeMissing) ||
			errors.Is(err, services.ErrJobDescriptionMissing) ||
			errors.Is(err, services.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": services.DisplayError(err),
		})
	}

	return c.JSON(models.ChatResponse{Response: reply})
}

func (h *ChatHandler) HandleClearChat(c *fiber.Ctx) error {
	h.assistant.ClearChat(currentSession(c))
	return c.JSON(models.StatusResponse{Success: true, Message: "Chat cleared"})
}

func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
	session := currentSession(c)
	return c.JSON(models.HistoryResponse{
		Mode:        session.Mode,
		ChatHistory: session.History(),
	})
}

func (h *ChatHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.assistant.Readiness(currentSession(c)))
}
