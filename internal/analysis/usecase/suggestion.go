package usecase

import (
	"context"

	"egy-discovery/internal/analysis"
)

// CreateSuggestion stores a plan entry. Tags default to DefaultTags when not provided.
func (uc *implUseCase) CreateSuggestion(ctx context.Context, input analysis.CreateSuggestionInput) (analysis.CreateSuggestionOutput, error) {
	tags := analysis.DefaultTags
	if input.Tags != nil {
		tags = *input.Tags
	}

	s, err := uc.repo.CreateSuggestion(ctx, analysis.Suggestion{
		Title: input.Title,
		Body:  input.Body,
		Tags:  tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSuggestion CreateSuggestion: %v", err)
		return analysis.CreateSuggestionOutput{}, err
	}

	return analysis.CreateSuggestionOutput{Suggestion: s}, nil
}

func (uc *implUseCase) ListSuggestions(ctx context.Context) (analysis.ListSuggestionsOutput, error) {
	ss, err := uc.repo.ListSuggestions(ctx, analysis.ListLimit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSuggestions ListSuggestions: %v", err)
		return analysis.ListSuggestionsOutput{}, err
	}
	return analysis.ListSuggestionsOutput{Suggestions: ss}, nil
}
