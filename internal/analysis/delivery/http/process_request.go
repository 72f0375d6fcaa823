package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "egy-discovery/pkg/errors"
)

func (h *handler) processCreateInsightReq(c *gin.Context) (createInsightReq, error) {
	var req createInsightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, req.validate()
}

func (h *handler) processCreateSuggestionReq(c *gin.Context) (createSuggestionReq, error) {
	var req createSuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, req.validate()
}
