package middleware

import (
	"time"

	"egy-discovery/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request and records the HTTP metrics.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.RecordHTTPRequest(c.Request.Method, path, status, elapsed)

		ctx := c.Request.Context()
		if status >= 500 {
			m.l.Errorf(ctx, "%s: %s %s -> %d (%s)", LogPrefixAccess, c.Request.Method, c.Request.URL.Path, status, elapsed)
			return
		}
		m.l.Infof(ctx, "%s: %s %s -> %d (%s)", LogPrefixAccess, c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
