package usecase

import (
	"context"

	"egy-discovery/internal/agent"
)

func (uc *implUseCase) runLeadGen(ctx context.Context, prompt string, params agent.Params) agent.Result {
	ts := uc.timestamp()
	baseline := func() agent.Result {
		return agent.Result{
			"items": []map[string]any{
				{
					"name":     LeadName,
					"platform": LeadPlatform,
					"score":    LeadScore,
					"source":   prompt,
				},
			},
			"agent":       string(agent.LeadGen),
			"timestamp":   ts,
			"ai_enhanced": false,
		}
	}

	d := uc.directive(ctx, RoleLeadGen, tmplLeadGen, map[string]any{"prompt": prompt}, 500, 0.7)
	res, _ := uc.withOptionalAugmentation(ctx, agent.LeadGen, baseline, d, func(base agent.Result, text string) agent.Result {
		base["items"] = []map[string]any{
			{
				"name":     StrategyName,
				"platform": StrategyPlatform,
				"score":    StrategyScore,
				"source":   prompt,
				"strategy": text,
			},
		}
		base["ai_enhanced"] = true
		return base
	})
	return res
}
