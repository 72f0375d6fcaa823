package usecase

import (
	"context"
	"maps"

	"egy-discovery/internal/agent"
)

func (uc *implUseCase) runAccounting(ctx context.Context, prompt string, params agent.Params) agent.Result {
	tx := mapParam(params, ParamTx)
	if tx == nil {
		tx = maps.Clone(defaultTx)
	}
	return agent.Result{
		"transaction": tx,
		"prompt":      prompt,
		"agent":       string(agent.Accounting),
		"timestamp":   uc.timestamp(),
	}
}

func (uc *implUseCase) runMarketing(ctx context.Context, prompt string, params agent.Params) agent.Result {
	return agent.Result{
		"campaign": map[string]any{
			"name":      firstNonEmpty(stringParam(params, ParamName), DefaultCampaignName),
			"platform":  firstNonEmpty(stringParam(params, ParamPlatform), DefaultCampaignPlatform),
			"objective": firstNonEmpty(stringParam(params, ParamObjective), DefaultCampaignObjective),
		},
		"prompt":    prompt,
		"agent":     string(agent.Marketing),
		"timestamp": uc.timestamp(),
	}
}
