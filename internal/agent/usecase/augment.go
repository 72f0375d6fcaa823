package usecase

import (
	"context"

	"egy-discovery/internal/agent"
	"egy-discovery/internal/augmenter"
	"egy-discovery/pkg/metrics"

	"github.com/aymerick/raymond"
)

// withOptionalAugmentation returns merge(baseline(), text) when augmentation succeeds and a fresh
// baseline() otherwise. The augmenter is called exactly once.
func (uc *implUseCase) withOptionalAugmentation(
	ctx context.Context,
	id agent.Identity,
	baseline func() agent.Result,
	d augmenter.Directive,
	merge func(base agent.Result, text string) agent.Result,
) (agent.Result, augmenter.Outcome) {
	out := uc.augmenter.Augment(ctx, d)
	metrics.RecordAugmentation(string(id), string(out.Status))

	if !out.Enhanced() {
		uc.l.Debugf(ctx, "internal.agent.usecase.%s: augmentation %s: %s", id, out.Status, out.Reason)
		return baseline(), out
	}
	return merge(baseline(), out.Text), out
}

// directive renders tmpl with data into a Directive.
func (uc *implUseCase) directive(ctx context.Context, role string, tmpl *raymond.Template, data map[string]any, maxTokens int, temperature float64) augmenter.Directive {
	content, err := tmpl.Exec(data)
	if err != nil {
		uc.l.Warnf(ctx, "internal.agent.usecase.directive: render failed: %v", err)
	}
	return augmenter.Directive{
		SystemRole:  role,
		UserContent: content,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
