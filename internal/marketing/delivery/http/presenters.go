package http

import (
	"time"

	"egy-discovery/internal/marketing"
	pkgErrors "egy-discovery/pkg/errors"
)

// --- Request DTOs ---

type createCampaignReq struct {
	Platform    *string        `json:"platform"`
	ExternalID  string         `json:"external_id"`
	Name        *string        `json:"name"`
	Objective   string         `json:"objective"`
	Status      string         `json:"status"`
	BudgetDaily float64        `json:"budget_daily"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Targeting   map[string]any `json:"targeting"`
}

func (r createCampaignReq) validate() error {
	switch {
	case r.Platform == nil:
		return pkgErrors.NewBadRequestError("Missing required field: platform")
	case r.Name == nil:
		return pkgErrors.NewBadRequestError("Missing required field: name")
	}
	return nil
}

func (r createCampaignReq) toInput() marketing.CreateCampaignInput {
	return marketing.CreateCampaignInput{
		Platform:    *r.Platform,
		ExternalID:  r.ExternalID,
		Name:        *r.Name,
		Objective:   r.Objective,
		Status:      r.Status,
		BudgetDaily: r.BudgetDaily,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Targeting:   r.Targeting,
	}
}

type listCampaignsReq struct {
	Platform string `form:"platform"`
}

type createMetricReq struct {
	CampaignID  *int64         `json:"campaign_id"`
	Date        *string        `json:"date"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Spend       float64        `json:"spend"`
	Conversions int64          `json:"conversions"`
	Revenue     float64        `json:"revenue"`
	Metrics     map[string]any `json:"metrics"`
}

func (r createMetricReq) validate() error {
	if r.Date == nil {
		return pkgErrors.NewBadRequestError("Missing required field: date")
	}
	return nil
}

func (r createMetricReq) toInput() marketing.CreateMetricInput {
	return marketing.CreateMetricInput{
		CampaignID:  r.CampaignID,
		Date:        *r.Date,
		Impressions: r.Impressions,
		Clicks:      r.Clicks,
		Spend:       r.Spend,
		Conversions: r.Conversions,
		Revenue:     r.Revenue,
		Metrics:     r.Metrics,
	}
}

type listMetricsReq struct {
	CampaignID *int64 `form:"campaign_id"`
}

// --- Response DTOs ---

type campaignResp struct {
	ID          int64          `json:"id"`
	Platform    string         `json:"platform"`
	ExternalID  string         `json:"external_id,omitempty"`
	Name        string         `json:"name"`
	Objective   string         `json:"objective,omitempty"`
	Status      string         `json:"status"`
	BudgetDaily float64        `json:"budget_daily"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
	Targeting   map[string]any `json:"targeting"`
	CreatedAt   time.Time      `json:"created_at"`
}

func newCampaignResp(c marketing.Campaign) campaignResp {
	return campaignResp{
		ID:          c.ID,
		Platform:    c.Platform,
		ExternalID:  c.ExternalID,
		Name:        c.Name,
		Objective:   c.Objective,
		Status:      c.Status,
		BudgetDaily: c.BudgetDaily,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Targeting:   c.Targeting,
		CreatedAt:   c.CreatedAt,
	}
}

type metricResp struct {
	ID          int64          `json:"id"`
	CampaignID  *int64         `json:"campaign_id"`
	Date        string         `json:"date"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Spend       float64        `json:"spend"`
	Conversions int64          `json:"conversions"`
	Revenue     float64        `json:"revenue"`
	Metrics     map[string]any `json:"metrics"`
	CreatedAt   time.Time      `json:"created_at"`
}

func newMetricResp(m marketing.Metric) metricResp {
	return metricResp{
		ID:          m.ID,
		CampaignID:  m.CampaignID,
		Date:        m.Date,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Spend:       m.Spend,
		Conversions: m.Conversions,
		Revenue:     m.Revenue,
		Metrics:     m.Metrics,
		CreatedAt:   m.CreatedAt,
	}
}

func (h *handler) newCampaignListResp(out marketing.ListCampaignsOutput) []campaignResp {
	items := make([]campaignResp, len(out.Campaigns))
	for i, c := range out.Campaigns {
		items[i] = newCampaignResp(c)
	}
	return items
}

func (h *handler) newMetricListResp(out marketing.ListMetricsOutput) []metricResp {
	items := make([]metricResp, len(out.Metrics))
	for i, m := range out.Metrics {
		items[i] = newMetricResp(m)
	}
	return items
}
