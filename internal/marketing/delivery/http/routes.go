package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	mk := rg.Group("/marketing")
	{
		mk.POST("/campaigns", h.CreateCampaign)
		mk.GET("/campaigns", h.ListCampaigns)
		mk.POST("/metrics", h.CreateMetric)
		mk.GET("/metrics", h.ListMetrics)
	}
}
