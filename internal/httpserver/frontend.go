package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"egy-discovery/config"
	"egy-discovery/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	apiPrefix         = "/api/"
	indexFile         = "index.html"
	ErrMsgAPINotFound = "API endpoint not found"
)

// resolveStaticDir returns the explicit dir when it exists, else the first existing candidate.
func resolveStaticDir(cfg config.StaticConfig) string {
	dirs := cfg.Candidates
	if cfg.Dir != "" {
		dirs = []string{cfg.Dir}
	}
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

func (srv HTTPServer) registerFrontend() {
	srv.gin.NoRoute(srv.serveFrontend)
}

// serveFrontend serves built assets with an index.html fallback for client-side routes.
// Unknown /api paths never fall through to the frontend.
func (srv HTTPServer) serveFrontend(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, apiPrefix) || path == "/api" {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrMsgAPINotFound})
		return
	}

	if srv.staticDir == "" || c.Request.Method != http.MethodGet {
		response.NotFound(c, "frontend not built")
		return
	}

	file := filepath.Join(srv.staticDir, filepath.Clean("/"+path))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	c.File(filepath.Join(srv.staticDir, indexFile))
}
