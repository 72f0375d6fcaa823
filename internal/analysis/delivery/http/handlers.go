package http

import (
	"github.com/gin-gonic/gin"

	"egy-discovery/pkg/response"
)

// CreateInsight godoc
// @Summary     Create a scored market insight
// @Description Scores data.roas and data.ctr: min(int(roas*20),60) + min(int(ctr*100),40).
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body createInsightReq true "Insight (topic required)"
// @Success     201  {object} insightResp
// @Failure     400  {object} response.Resp "Missing required field"
// @Router      /api/analysis/insights [POST]
func (h *handler) CreateInsight(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateInsightReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateInsight(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateInsight: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newInsightResp(output.Insight))
}

// ListInsights godoc
// @Summary     List market insights
// @Tags        Analysis
// @Produce     json
// @Success     200 {array} insightResp
// @Router      /api/analysis/insights [GET]
func (h *handler) ListInsights(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListInsights(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInsights: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInsightListResp(output))
}

// CreateSuggestion godoc
// @Summary     Create a plan suggestion
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body createSuggestionReq true "Suggestion (title and body required)"
// @Success     201  {object} suggestionResp
// @Failure     400  {object} response.Resp "Missing required field"
// @Router      /api/analysis/plan [POST]
func (h *handler) CreateSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSuggestionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSuggestion(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSuggestion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newSuggestionResp(output.Suggestion))
}

// ListSuggestions godoc
// @Summary     List plan suggestions
// @Tags        Analysis
// @Produce     json
// @Success     200 {array} suggestionResp
// @Router      /api/analysis/plan [GET]
func (h *handler) ListSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListSuggestions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSuggestions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestionListResp(output))
}
