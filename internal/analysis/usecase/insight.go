package usecase

import (
	"context"
	"fmt"
	"strconv"

	"egy-discovery/internal/analysis"
)

// CreateInsight scores input.Data and stores the resulting Insight.
func (uc *implUseCase) CreateInsight(ctx context.Context, input analysis.CreateInsightInput) (analysis.CreateInsightOutput, error) {
	data := input.Data
	if data == nil {
		data = map[string]any{}
	}

	score, err := Score(data)
	if err != nil {
		return analysis.CreateInsightOutput{}, err
	}

	in, err := uc.repo.CreateInsight(ctx, analysis.Insight{
		Topic:   input.Topic,
		Summary: fmt.Sprintf("Insight for %s: ROAS=%s, CTR=%s. Score=%d/100.", input.Topic, display(data, "roas"), display(data, "ctr"), score),
		Score:   score,
		Data:    data,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateInsight CreateInsight: %v", err)
		return analysis.CreateInsightOutput{}, err
	}

	return analysis.CreateInsightOutput{Insight: in}, nil
}

func (uc *implUseCase) ListInsights(ctx context.Context) (analysis.ListInsightsOutput, error) {
	ins, err := uc.repo.ListInsights(ctx, analysis.ListLimit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListInsights ListInsights: %v", err)
		return analysis.ListInsightsOutput{}, err
	}
	return analysis.ListInsightsOutput{Insights: ins}, nil
}

// Score returns min(int(roas*20), 60) + min(int(ctr*100), 40). Missing or null values count as 0.
func Score(data map[string]any) (int, error) {
	roas, err := number(data["roas"])
	if err != nil {
		return 0, err
	}
	ctr, err := number(data["ctr"])
	if err != nil {
		return 0, err
	}
	return min(int(roas*20), analysis.MaxROASPoints) + min(int(ctr*100), analysis.MaxCTRPoints), nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, analysis.ErrInvalidMetric
		}
		return f, nil
	default:
		return 0, analysis.ErrInvalidMetric
	}
}

// display renders data[key] for the summary, 0 when absent.
func display(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return "0"
	}
	return fmt.Sprint(v)
}
