package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "egy-discovery/pkg/errors"
)

func (h *handler) processWebhookReq(c *gin.Context) (webhookReq, error) {
	var req webhookReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, nil
}

func (h *handler) processWorkflowReq(c *gin.Context) (workflowReq, error) {
	var req workflowReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	req.WorkflowID = c.Param("id")
	return req, nil
}
