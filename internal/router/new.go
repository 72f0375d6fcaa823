package router

import (
	"context"

	"egy-discovery/internal/agent"
	"egy-discovery/pkg/log"
)

// Router selects exactly one task identity per request.
type Router interface {
	Classify(ctx context.Context, prompt string, params agent.Params) Decision
}

// KeywordRouter classifies prompts with an ordered keyword cascade.
type KeywordRouter struct {
	rules []Rule
	l     log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. A nil rules slice uses DefaultRules.
func New(l log.Logger, rules []Rule) *KeywordRouter {
	if rules == nil {
		rules = DefaultRules
	}
	return &KeywordRouter{
		rules: rules,
		l:     l,
	}
}
