package usecase

import (
	"context"
	"strings"

	"egy-discovery/internal/agent"
	"egy-discovery/pkg/extractor"
)

func (uc *implUseCase) runEnrich(ctx context.Context, prompt string, params agent.Params) agent.Result {
	payload := mapParam(params, ParamPayload)
	text := strings.ToLower(firstNonEmpty(stringParam(payload, ParamBio), stringParam(payload, ParamExtract), prompt))
	analyzed := extractor.Truncate(text, TextAnalyzedRunes)

	baseline := func() agent.Result {
		score, factors := uc.score(text)
		return agent.Result{
			"score":         score,
			"agent":         string(agent.Enrich),
			"text_analyzed": analyzed,
			"factors":       factors,
			"ai_enhanced":   false,
		}
	}

	d := uc.directive(ctx, RoleEnrich, tmplEnrich, map[string]any{"text": text}, 300, 0.3)
	res, _ := uc.withOptionalAugmentation(ctx, agent.Enrich, baseline, d, func(_ agent.Result, insight string) agent.Result {
		return agent.Result{
			"score":         EnhancedScore,
			"agent":         string(agent.Enrich),
			"text_analyzed": analyzed,
			"confidence":    HighConfidence,
			"ai_analysis":   insight,
			"ai_enhanced":   true,
		}
	})
	return res
}

// score sums the weights of every factor with a keyword in text, capped at MaxEnrichScore.
func (uc *implUseCase) score(text string) (int, map[string]bool) {
	total := 0
	factors := make(map[string]bool, len(uc.cfg.ScoreFactors))
	for _, f := range uc.cfg.ScoreFactors {
		hit := false
		for _, kw := range f.Keywords {
			if strings.Contains(text, kw) {
				hit = true
				break
			}
		}
		factors[f.Key] = hit
		if hit {
			total += f.Weight
		}
	}
	return min(total, MaxEnrichScore), factors
}
