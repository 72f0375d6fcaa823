package usecase

import (
	"context"

	"egy-discovery/internal/agent"
	"egy-discovery/pkg/metrics"
)

// Route classifies the request and runs exactly one handler.
func (uc *implUseCase) Route(ctx context.Context, input agent.RouteInput) (agent.RouteOutput, error) {
	params := input.Params
	if params == nil {
		params = agent.Params{}
	}

	decision := uc.router.Classify(ctx, input.Prompt, params)
	h, served := uc.registry.Resolve(decision.Identity)
	if h == nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixRoute, agent.ErrNoDefaultHandler)
		return agent.RouteOutput{}, agent.ErrNoDefaultHandler
	}
	if served != decision.Identity {
		uc.l.Warnf(ctx, "%s: no handler for agent=%q, using default", LogPrefixRoute, decision.Identity)
	}

	metrics.RecordAgentRoute(string(served))
	uc.l.Infof(ctx, "%s: agent=%s source=%s", LogPrefixRoute, served, decision.Source)

	return agent.RouteOutput{
		Agent:  served,
		Result: h.Handle(ctx, input.Prompt, params),
	}, nil
}

// Classify reports which handler Route would run, without running it.
func (uc *implUseCase) Classify(ctx context.Context, input agent.ClassifyInput) (agent.ClassifyOutput, error) {
	decision := uc.router.Classify(ctx, input.Prompt, input.Params)
	_, served := uc.registry.Resolve(decision.Identity)

	uc.l.Debugf(ctx, "%s: agent=%s source=%s", LogPrefixClassify, served, decision.Source)

	return agent.ClassifyOutput{
		Agent:   served,
		Source:  decision.Source,
		Keyword: decision.Keyword,
	}, nil
}
