package http

import (
	"github.com/gin-gonic/gin"

	"egy-discovery/pkg/response"
)

// Route godoc
// @Summary     Route a prompt to an agent
// @Description Selects exactly one agent from the prompt and params, runs it and returns its result.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Prompt and optional params (params.agent overrides routing)"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/agents/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Route(ctx, req.toRouteInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Classify godoc
// @Summary     Classify a prompt
// @Description Returns the agent a prompt would be routed to, without running it.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Prompt and optional params"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/agents/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toClassifyInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}
