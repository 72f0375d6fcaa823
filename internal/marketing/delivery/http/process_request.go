package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "egy-discovery/pkg/errors"
)

func (h *handler) processCreateCampaignReq(c *gin.Context) (createCampaignReq, error) {
	var req createCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, req.validate()
}

func (h *handler) processListCampaignsReq(c *gin.Context) (listCampaignsReq, error) {
	var req listCampaignsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, nil
}

func (h *handler) processCreateMetricReq(c *gin.Context) (createMetricReq, error) {
	var req createMetricReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return req, req.validate()
}

func (h *handler) processListMetricsReq(c *gin.Context) (listMetricsReq, error) {
	var req listMetricsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("campaign_id must be an integer")
	}
	return req, nil
}
