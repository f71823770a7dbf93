package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/recruitment-assistant/internal/config"
	"alfredoptarigan/recruitment-assistant/internal/handlers"
	"alfredoptarigan/recruitment-assistant/internal/repositories"
	"alfredoptarigan/recruitment-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize session store
	var sessions repositories.SessionRepository
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		sessions = repositories.NewPostgresSessionRepository(db)
	default:
		sessions = repositories.NewMemorySessionRepository()
	}
	log.Printf("✅ Session store initialized (%s)", cfg.Session.Store)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	assistant, err := services.BuildAssistant(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize assistant: %v", err)
	}
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	router := &handlers.Router{
		Sessions:   sessions,
		CookieName: cfg.Session.CookieName,
		Upload:     handlers.NewUploadHandler(assistant, storageService, cfg.Storage.MaxFileSize),
		Chat:       handlers.NewChatHandler(assistant),
		Analysis:   handlers.NewAnalysisHandler(assistant),
	}
	log.Println("✅ Handlers initialized")

	app := handlers.NewApp(int(cfg.Storage.MaxFileSize) + 1<<20)
	router.Register(app)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
