package httpserver

import (
	"net/http"

	"egy-discovery/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "egy-discovery"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("healthy"))
}

// readyCheck handles readiness check, ready once the server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("alive"))
}

// apiHealth keeps the plain body the frontend polls.
// @Summary API Health
// @Description Plain health check polled by the frontend
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is running"
// @Router /api/health [get]
func (srv HTTPServer) apiHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": HealthMessage,
	})
}

func (srv HTTPServer) healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"features": gin.H{
			"ai":           srv.features.EnableAI,
			"workflows":    srv.features.EnableN8NWorkflows,
			"web_scraping": srv.features.EnableWebScraping,
		},
	}
}
