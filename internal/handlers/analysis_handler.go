package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruitment-assistant/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalysisHandler struct {
	assistant services.AssistantService
}

func NewAnalysisHandler(assistant services.AssistantService) *AnalysisHandler {
	return &AnalysisHandler{assistant: assistant}
}

func (h *AnalysisHandler) HandleATSAnalysis(c *fiber.Ctx) error {
	resp, err := h.assistant.AnalyzeATS(c.UserContext(), currentSession(c))
	if err != nil {
		if errors.Is(err, services.ErrResumeMissing) || errors.Is(err, services.ErrJobDescriptionMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("ATS analysis failed: %v", err),
		})
	}

	return c.JSON(resp)
}

func (h *AnalysisHandler) HandleExport(c *fiber.Ctx) error {
	data, err := h.assistant.Export(currentSession(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("export failed: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recruitment-session.xlsx"`)

	return c.Send(data)
}
