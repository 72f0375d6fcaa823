package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the automation endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	automation := rg.Group("/automation")
	{
		automation.POST("/webhook", h.ExecuteWebhook)
		automation.POST("/workflows/:id/execute", h.ExecuteWorkflow)
	}
}
