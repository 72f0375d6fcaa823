package augmenter

import (
	"context"
	"strings"

	"egy-discovery/pkg/openai"
)

// Augment makes at most one chat-completion call for d.
func (a *implAugmenter) Augment(ctx context.Context, d Directive) Outcome {
	if !a.cfg.Enabled {
		return unavailable(ReasonDisabled)
	}
	if a.cfg.APIKey == "" {
		return unavailable(ReasonMissingKey)
	}
	if a.client == nil {
		return unavailable(ReasonNoClient)
	}

	maxTokens, temperature := a.limits(d)

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, &openai.Request{
		Model: a.cfg.Model,
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: d.SystemRole},
			{Role: openai.RoleUser, Content: d.UserContent},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		a.l.Warnf(ctx, "%s: generation failed: %v", LogPrefixAugment, err)
		return failed(err.Error())
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		a.l.Warnf(ctx, "%s: %s", LogPrefixAugment, ReasonEmptyContent)
		return failed(ReasonEmptyContent)
	}

	return enhanced(text)
}

// limits applies the configured token limit and temperature as ceilings on d.
// A directive value of zero takes the configured one.
func (a *implAugmenter) limits(d Directive) (int, float64) {
	maxTokens := d.MaxTokens
	if maxTokens <= 0 || maxTokens > a.cfg.MaxTokens {
		maxTokens = a.cfg.MaxTokens
	}

	temperature := d.Temperature
	if temperature <= 0 || temperature > a.cfg.Temperature {
		temperature = a.cfg.Temperature
	}
	return maxTokens, temperature
}
