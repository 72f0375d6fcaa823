package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	an := rg.Group("/analysis")
	{
		an.POST("/insights", h.CreateInsight)
		an.GET("/insights", h.ListInsights)
		an.POST("/plan", h.CreateSuggestion)
		an.GET("/plan", h.ListSuggestions)
	}
}
