package httpserver

import (
	"context"

	agentHTTP "egy-discovery/internal/agent/delivery/http"
	agentUC "egy-discovery/internal/agent/usecase"
	"egy-discovery/internal/augmenter"
	"egy-discovery/internal/router"

	"github.com/gin-gonic/gin"
)

// setupAgentDomain wires router, augmenter and agent handlers, then registers /api/agents.
func (srv HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Classifier
	r := router.New(srv.l, nil)

	// 2. Optional generation step
	aug := augmenter.New(srv.l, srv.aiClient, augmenter.Config{
		Enabled:     srv.features.EnableAI,
		APIKey:      srv.openAI.APIKey,
		Model:       srv.openAI.Model,
		MaxTokens:   srv.openAI.MaxTokens,
		Temperature: srv.openAI.Temperature,
		Timeout:     srv.openAI.Timeout,
	})

	// 3. UseCase
	uc := agentUC.New(srv.l, r, aug, srv.extractor, agentUC.Config{
		EnableWebScraping: srv.features.EnableWebScraping,
	})

	// 4. HTTP Handler and routes
	h := agentHTTP.New(srv.l, uc)
	agentHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Agent domain registered (ai=%t, web_scraping=%t)", srv.features.EnableAI, srv.features.EnableWebScraping)
	return nil
}
