package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"egy-discovery/config"
	_ "egy-discovery/docs" // Swagger docs
	"egy-discovery/internal/httpserver"
	"egy-discovery/pkg/extractor"
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/n8n"
	"egy-discovery/pkg/openai"
)

// @title       EGY Discovery API
// @description Business-intelligence backend: agent routing with optional AI augmentation, n8n automation and record stores.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EGY Discovery API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Generation client (optional)
	var aiClient openai.IOpenAI
	if cfg.Features.EnableAI && cfg.OpenAI.APIKey != "" {
		client, aiErr := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		})
		if aiErr != nil {
			logger.Warnf(ctx, "OpenAI client not available: %v", aiErr)
		} else {
			aiClient = client
			logger.Infof(ctx, "OpenAI initialized (model=%s)", cfg.OpenAI.Model)
		}
	} else {
		logger.Warn(ctx, "AI augmentation off: ENABLE_AI_FEATURES is false or OPENAI_API_KEY is missing")
	}

	// 4. Automation engine and page extractor
	n8nClient := n8n.New(n8n.Config{Timeout: cfg.N8N.Timeout})
	pageExtractor := extractor.New(extractor.Config{})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AIClient:    aiClient,
		N8NClient:   n8nClient,
		Extractor:   pageExtractor,
		OpenAI:      cfg.OpenAI,
		N8N:         cfg.N8N,
		Features:    cfg.Features,
		Static:      cfg.Static,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
