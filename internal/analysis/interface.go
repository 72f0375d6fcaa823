package analysis

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	CreateInsight(ctx context.Context, input CreateInsightInput) (CreateInsightOutput, error)
	ListInsights(ctx context.Context) (ListInsightsOutput, error)
	CreateSuggestion(ctx context.Context, input CreateSuggestionInput) (CreateSuggestionOutput, error)
	ListSuggestions(ctx context.Context) (ListSuggestionsOutput, error)
}
