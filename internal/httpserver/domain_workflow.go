package httpserver

import (
	"context"

	"egy-discovery/internal/workflow"
	workflowHTTP "egy-discovery/internal/workflow/delivery/http"
	workflowUC "egy-discovery/internal/workflow/usecase"

	"github.com/gin-gonic/gin"
)

// setupWorkflowDomain registers /api/automation.
func (srv HTTPServer) setupWorkflowDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := workflowUC.New(srv.l, srv.n8nClient, workflow.Config{
		Enabled:    srv.features.EnableN8NWorkflows,
		BaseURL:    srv.n8n.BaseURL,
		APIKey:     srv.n8n.APIKey,
		WebhookURL: srv.n8n.WebhookURL,
	})

	h := workflowHTTP.New(srv.l, uc)
	workflowHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Workflow domain registered (enabled=%t)", srv.features.EnableN8NWorkflows)
	return nil
}
