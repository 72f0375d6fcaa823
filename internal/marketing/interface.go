package marketing

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (CreateCampaignOutput, error)
	ListCampaigns(ctx context.Context, input ListCampaignsInput) (ListCampaignsOutput, error)
	CreateMetric(ctx context.Context, input CreateMetricInput) (CreateMetricOutput, error)
	ListMetrics(ctx context.Context, input ListMetricsInput) (ListMetricsOutput, error)
}
