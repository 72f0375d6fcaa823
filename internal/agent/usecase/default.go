package usecase

import (
	"context"
	"fmt"

	"egy-discovery/internal/agent"
	"egy-discovery/internal/augmenter"
)

func (uc *implUseCase) runDefault(ctx context.Context, prompt string, params agent.Params) agent.Result {
	ts := uc.timestamp()
	baseline := func() agent.Result {
		return agent.Result{
			"echo":        prompt,
			"agent":       string(agent.Default),
			"timestamp":   ts,
			"ai_enhanced": false,
		}
	}

	d := uc.directive(ctx, RoleDefault, tmplDefault, map[string]any{"prompt": prompt}, 500, 0.7)
	res, out := uc.withOptionalAugmentation(ctx, agent.Default, baseline, d, func(_ agent.Result, text string) agent.Result {
		return agent.Result{
			"reply":       text,
			"agent":       string(agent.Default),
			"timestamp":   ts,
			"ai_enhanced": true,
		}
	})
	if !out.Enhanced() {
		res["note"] = note(out)
	}
	return res
}

func note(out augmenter.Outcome) string {
	if out.Status == augmenter.StatusUnavailable {
		return fmt.Sprintf("AI enhancement unavailable: %s", out.Reason)
	}
	return fmt.Sprintf("AI enhancement failed: %s", out.Reason)
}
