package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "egy-discovery/pkg/errors"
)

// processRouteReq binds the agent request body. An empty body is an empty prompt.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, nil
}
