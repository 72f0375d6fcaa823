package agent_test

import (
	"context"
	"testing"

	"egy-discovery/internal/agent"
)

func handlerFor(id agent.Identity) agent.Handler {
	return agent.HandlerFunc{ID: id, Fn: func(ctx context.Context, prompt string, params agent.Params) agent.Result {
		return agent.Result{"agent": string(id)}
	}}
}

func TestRegistry(t *testing.T) {
	registry := agent.NewRegistry()
	registry.Register(handlerFor(agent.Research))
	registry.Register(handlerFor(agent.Default))

	t.Run("Get existing handler", func(t *testing.T) {
		got, ok := registry.Get(agent.Research)
		if !ok || got.Identity() != agent.Research {
			t.Errorf("expected research handler to be found")
		}
	})

	t.Run("Get missing handler", func(t *testing.T) {
		if _, ok := registry.Get(agent.Scrape); ok {
			t.Errorf("expected scrape handler to be missing")
		}
	})

	t.Run("Resolve unknown falls back to default", func(t *testing.T) {
		h, served := registry.Resolve(agent.Identity("astrology"))
		if served != agent.Default || h == nil {
			t.Fatalf("expected default handler, got %q", served)
		}
		res := h.Handle(context.Background(), "hi", nil)
		if res["agent"] != "default" {
			t.Errorf("expected default result, got %v", res)
		}
	})
}
