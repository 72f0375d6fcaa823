package usecase

import (
	"context"
	"time"

	"egy-discovery/internal/agent"
	"egy-discovery/internal/augmenter"
	"egy-discovery/internal/router"
	"egy-discovery/pkg/extractor"
	"egy-discovery/pkg/log"
)

// Config holds the handler settings read at startup.
type Config struct {
	EnableWebScraping bool
	ScoreFactors      []ScoreFactor
}

// implUseCase is the private implementation of agent.UseCase.
type implUseCase struct {
	l         log.Logger
	router    router.Router
	augmenter augmenter.Augmenter
	extractor extractor.IExtractor
	cfg       Config
	registry  *agent.Registry
	now       func() time.Time
}

var _ agent.UseCase = (*implUseCase)(nil)

// New creates a new agent UseCase with every handler registered.
func New(l log.Logger, r router.Router, aug augmenter.Augmenter, ext extractor.IExtractor, cfg Config) *implUseCase {
	if len(cfg.ScoreFactors) == 0 {
		cfg.ScoreFactors = DefaultScoreFactors
	}

	uc := &implUseCase{
		l:         l,
		router:    r,
		augmenter: aug,
		extractor: ext,
		cfg:       cfg,
		registry:  agent.NewRegistry(),
		now:       time.Now,
	}

	handlers := map[agent.Identity]func(context.Context, string, agent.Params) agent.Result{
		agent.LeadGen:    uc.runLeadGen,
		agent.Research:   uc.runResearch,
		agent.Scrape:     uc.runScrape,
		agent.Enrich:     uc.runEnrich,
		agent.Accounting: uc.runAccounting,
		agent.Marketing:  uc.runMarketing,
		agent.Default:    uc.runDefault,
	}
	for _, id := range agent.Identities {
		uc.registry.Register(agent.HandlerFunc{ID: id, Fn: handlers[id]})
	}

	return uc
}
