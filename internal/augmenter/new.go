package augmenter

import (
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/openai"
)

type implAugmenter struct {
	l      log.Logger
	client openai.IOpenAI
	cfg    Config
}

var _ Augmenter = (*implAugmenter)(nil)

// New creates an Augmenter. client may be nil when no API key is configured.
func New(l log.Logger, client openai.IOpenAI, cfg Config) *implAugmenter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &implAugmenter{
		l:      l,
		client: client,
		cfg:    cfg,
	}
}
