package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "egy-discovery/pkg/errors"
)

// processCreateReq binds and validates the create transaction request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, req.validate()
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}
