package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruitment-assistant/internal/models"
	"alfredoptarigan/recruitment-assistant/internal/services"
)

type UploadHandler struct {
	assistant      services.AssistantService
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	assistant services.AssistantService,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		assistant:      assistant,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}
	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}

	filePath, status, err := h.saveUpload(file, "resume")
	if err != nil {
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer h.cleanup(filePath)

	resp, err := h.assistant.UploadResume(currentSession(c), filePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read resume file",
		})
	}

	return c.JSON(resp)
}

// HandleUploadCoverLetter clears the cover letter when no file is sent.
func (h *UploadHandler) HandleUploadCoverLetter(c *fiber.Ctx) error {
	session := currentSession(c)

	file, err := c.FormFile("cover_letter")
	if err != nil || file.Filename == "" {
		message, _ := h.assistant.UploadCoverLetter(session, "")
		return c.JSON(models.StatusResponse{Success: true, Message: message})
	}

	filePath, status, err := h.saveUpload(file, "cover_letter")
	if err != nil {
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer h.cleanup(filePath)

	message, err := h.assistant.UploadCoverLetter(session, filePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not read cover letter file",
		})
	}

	return c.JSON(models.StatusResponse{Success: true, Message: message})
}

func (h *UploadHandler) saveUpload(file *multipart.FileHeader, fileType string) (string, int, error) {
	if file.Size > h.maxFileSize {
		return "", fiber.StatusBadRequest, fmt.Errorf("file too large. Max size: %d bytes", h.maxFileSize)
	}
	if !services.IsSupportedDocument(file.Filename) {
		return "", fiber.StatusBadRequest, errors.New("Invalid file format. Please upload a PDF or DOCX file.")
	}

	filePath, err := h.storageService.SaveFile(file, fileType)
	if err != nil {
		return "", fiber.StatusInternalServerError, fmt.Errorf("failed to save %s file: %v", fileType, err)
	}

	return filePath, fiber.StatusOK, nil
}

func (h *UploadHandler) cleanup(filePath string) {
	if err := h.storageService.DeleteFile(filePath); err != nil {
		log.Printf("⚠️ Failed to remove upload %s: %v", filePath, err)
	}
}
