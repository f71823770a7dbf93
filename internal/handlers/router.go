package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/recruitment-assistant/internal/repositories"
)

type Router struct {
	Sessions   repositories.SessionRepository
	CookieName string
	Upload     *UploadHandler
	Chat       *ChatHandler
	Analysis   *AnalysisHandler
}

// NewApp creates the Fiber app with the shared middleware stack.
func NewApp(bodyLimit int) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Recruitment Assistant API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}

func (r *Router) Register(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Recruitment Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/upload-resume",
				"POST /api/upload-cover-letter",
				"POST /api/job-description",
				"POST /api/set-mode",
				"POST /api/chat",
				"GET /api/ats-analysis",
				"POST /api/clear-chat",
				"GET /api/history",
				"GET /api/status",
				"GET /api/export",
			},
		})
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Use(SessionMiddleware(r.Sessions, r.CookieName))

	api.Post("/upload-resume", r.Upload.HandleUploadResume)
	api.Post("/upload-cover-letter", r.Upload.HandleUploadCoverLetter)
	api.Post("/job-description", r.Chat.HandleJobDescription)
	api.Post("/set-mode", r.Chat.HandleSetMode)
	api.Post("/chat", r.Chat.HandleChat)
	api.Post("/clear-chat", r.Chat.HandleClearChat)
	api.Get("/history", r.Chat.HandleHistory)
	api.Get("/status", r.Chat.HandleStatus)
	api.Get("/ats-analysis", r.Analysis.HandleATSAnalysis)
	api.Get("/export", r.Analysis.HandleExport)
}

func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
