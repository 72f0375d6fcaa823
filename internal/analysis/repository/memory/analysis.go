package memory

import (
	"context"
	"slices"

	"egy-discovery/internal/analysis"
)

func (r *implRepository) CreateInsight(ctx context.Context, in analysis.Insight) (analysis.Insight, error) {
	in.ID = r.seq.Next()
	in.CreatedAt = r.now()

	r.mu.Lock()
	r.insights = append(r.insights, in)
	r.mu.Unlock()

	return in, nil
}

func (r *implRepository) ListInsights(ctx context.Context, limit int) ([]analysis.Insight, error) {
	r.mu.RLock()
	out := slices.Clone(r.insights)
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b analysis.Insight) int { return int(b.ID - a.ID) })
	return capped(out, limit), nil
}

func (r *implRepository) CreateSuggestion(ctx context.Context, s analysis.Suggestion) (analysis.Suggestion, error) {
	s.ID = r.seq.Next()
	s.CreatedAt = r.now()

	r.mu.Lock()
	r.suggestions = append(r.suggestions, s)
	r.mu.Unlock()

	return s, nil
}

func (r *implRepository) ListSuggestions(ctx context.Context, limit int) ([]analysis.Suggestion, error) {
	r.mu.RLock()
	out := slices.Clone(r.suggestions)
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b analysis.Suggestion) int { return int(b.ID - a.ID) })
	return capped(out, limit), nil
}

func capped[T any](items []T, limit int) []T {
	if items == nil {
		items = []T{}
	}
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
