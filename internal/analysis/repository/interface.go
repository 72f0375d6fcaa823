package repository

import (
	"context"

	"egy-discovery/internal/analysis"
)

// Repository is the composed interface for the analysis data store.
// Lists are ordered by ID descending and capped at limit when limit > 0.
type Repository interface {
	CreateInsight(ctx context.Context, in analysis.Insight) (analysis.Insight, error)
	ListInsights(ctx context.Context, limit int) ([]analysis.Insight, error)
	CreateSuggestion(ctx context.Context, s analysis.Suggestion) (analysis.Suggestion, error)
	ListSuggestions(ctx context.Context, limit int) ([]analysis.Suggestion, error)
}
