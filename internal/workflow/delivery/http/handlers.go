package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"egy-discovery/internal/workflow"
	"egy-discovery/pkg/response"
)

// ExecuteWebhook godoc
// @Summary     Call an n8n webhook
// @Description Sends body as JSON to webhook_url (or the configured N8N_WEBHOOK_URL) and returns the normalized outcome.
// @Tags        Automation
// @Accept      json
// @Produce     json
// @Param       body body webhookReq true "Webhook request"
// @Success     200  {object} outcomeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Automation not configured"
// @Router      /api/automation/webhook [POST]
func (h *handler) ExecuteWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWebhookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respond(c, h.uc.ExecuteWebhook(ctx, req.toInput()))
}

// ExecuteWorkflow godoc
// @Summary     Execute an n8n workflow
// @Description Runs workflow :id through the n8n REST API and returns the normalized outcome.
// @Tags        Automation
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Workflow ID"
// @Param       body body workflowReq true "Workflow payload"
// @Success     200  {object} outcomeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Automation not configured"
// @Router      /api/automation/workflows/{id}/execute [POST]
func (h *handler) ExecuteWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorkflowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respond(c, h.uc.ExecuteWorkflow(ctx, req.toInput()))
}

// respond reports configuration errors as 503. Every other outcome, remote failures
// included, is a 200 carrying the outcome.
func (h *handler) respond(c *gin.Context, o workflow.Outcome) {
	if o.Configuration() {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: 1,
			Message:   "automation not configured",
			Data:      h.newOutcomeResp(o),
		})
		return
	}
	response.OK(c, h.newOutcomeResp(o))
}
