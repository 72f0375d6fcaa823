package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the agent endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	agents := rg.Group("/agents")
	{
		agents.POST("/route", h.Route)
		agents.POST("/classify", h.Classify)
	}
}
