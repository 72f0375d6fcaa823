package http

import (
	"github.com/gin-gonic/gin"

	"egy-discovery/internal/marketing"
	"egy-discovery/pkg/response"
)

// CreateCampaign godoc
// @Summary     Create an ad campaign
// @Tags        Marketing
// @Accept      json
// @Produce     json
// @Param       body body createCampaignReq true "Campaign (platform and name required)"
// @Success     201  {object} campaignResp
// @Failure     400  {object} response.Resp "Missing required field"
// @Router      /api/marketing/campaigns [POST]
func (h *handler) CreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateCampaignReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateCampaign(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCampaign: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Created(c, newCampaignResp(output.Campaign))
}

// ListCampaigns godoc
// @Summary     List ad campaigns
// @Tags        Marketing
// @Produce     json
// @Param       platform query string false "Platform filter"
// @Success     200 {array} campaignResp
// @Router      /api/marketing/campaigns [GET]
func (h *handler) ListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListCampaignsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListCampaigns(ctx, marketing.ListCampaignsInput{Platform: req.Platform})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCampaigns: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCampaignListResp(output))
}

// CreateMetric godoc
// @Summary     Record ad metrics
// @Tags        Marketing
// @Accept      json
// @Produce     json
// @Param       body body createMetricReq true "Metric (date required)"
// @Success     201  {object} metricResp
// @Failure     400  {object} response.Resp "Missing required field"
// @Router      /api/marketing/metrics [POST]
func (h *handler) CreateMetric(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateMetricReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateMetric(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMetric: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Created(c, newMetricResp(output.Metric))
}

// ListMetrics godoc
// @Summary     List ad metrics
// @Description Returns up to 500 metrics ordered by date then id, newest first.
// @Tags        Marketing
// @Produce     json
// @Param       campaign_id query int false "Campaign filter"
// @Success     200 {array} metricResp
// @Router      /api/marketing/metrics [GET]
func (h *handler) ListMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListMetricsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListMetrics(ctx, marketing.ListMetricsInput{CampaignID: req.CampaignID})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMetrics: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newMetricListResp(output))
}
