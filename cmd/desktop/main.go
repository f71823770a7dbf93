package main

import (
	"context"
	"log"

	"alfredoptarigan/recruitment-assistant/internal/config"
	"alfredoptarigan/recruitment-assistant/internal/gui"
	"alfredoptarigan/recruitment-assistant/internal/services"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	assistant, err := services.BuildAssistant(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize assistant: %v", err)
	}

	gui.NewApp(assistant).Run()
}
