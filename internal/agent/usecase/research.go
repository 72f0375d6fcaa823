package usecase

import (
	"context"

	"egy-discovery/internal/agent"
)

func (uc *implUseCase) runResearch(ctx context.Context, prompt string, params agent.Params) agent.Result {
	topic := firstNonEmpty(stringParam(params, ParamTopic), prompt)
	ts := uc.timestamp()
	baseline := func() agent.Result {
		return agent.Result{
			"summary":     "Desk research on: " + topic,
			"agent":       string(agent.Research),
			"topic":       topic,
			"timestamp":   ts,
			"ai_enhanced": false,
		}
	}

	d := uc.directive(ctx, RoleResearch, tmplResearch, map[string]any{"topic": topic}, 800, 0.5)
	res, _ := uc.withOptionalAugmentation(ctx, agent.Research, baseline, d, func(base agent.Result, text string) agent.Result {
		base["ai_analysis"] = text
		base["ai_enhanced"] = true
		return base
	})
	return res
}
