package usecase

import (
	"context"

	"egy-discovery/internal/marketing"
	repo "egy-discovery/internal/marketing/repository"
)

// CreateMetric stores one day of campaign performance.
func (uc *implUseCase) CreateMetric(ctx context.Context, input marketing.CreateMetricInput) (marketing.CreateMetricOutput, error) {
	extra := input.Metrics
	if extra == nil {
		extra = map[string]any{}
	}

	m, err := uc.repo.CreateMetric(ctx, marketing.Metric{
		CampaignID:  input.CampaignID,
		Date:        input.Date,
		Impressions: input.Impressions,
		Clicks:      input.Clicks,
		Spend:       input.Spend,
		Conversions: input.Conversions,
		Revenue:     input.Revenue,
		Metrics:     extra,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateMetric CreateMetric: %v", err)
		return marketing.CreateMetricOutput{}, err
	}

	return marketing.CreateMetricOutput{Metric: m}, nil
}

func (uc *implUseCase) ListMetrics(ctx context.Context, input marketing.ListMetricsInput) (marketing.ListMetricsOutput, error) {
	ms, err := uc.repo.ListMetrics(ctx, repo.ListMetricsOptions{
		CampaignID: input.CampaignID,
		Limit:      marketing.MetricListLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMetrics ListMetrics: %v", err)
		return marketing.ListMetricsOutput{}, err
	}

	return marketing.ListMetricsOutput{Metrics: ms}, nil
}
