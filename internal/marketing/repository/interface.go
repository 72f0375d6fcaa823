package repository

import (
	"context"

	"egy-discovery/internal/marketing"
)

// Repository is the composed interface for the marketing data store.
type Repository interface {
	CampaignRepository
	MetricRepository
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c marketing.Campaign) (marketing.Campaign, error)
	ListCampaigns(ctx context.Context, opt ListCampaignsOptions) ([]marketing.Campaign, error)
}

type MetricRepository interface {
	CreateMetric(ctx context.Context, m marketing.Metric) (marketing.Metric, error)
	ListMetrics(ctx context.Context, opt ListMetricsOptions) ([]marketing.Metric, error)
}
