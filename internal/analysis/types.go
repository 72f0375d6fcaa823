package analysis

import "time"

// Insight is a scored market observation.
type Insight struct {
	ID        int64
	Topic     string
	Summary   string
	Score     int
	Data      map[string]any
	CreatedAt time.Time
}

// Suggestion is a free-form plan entry.
type Suggestion struct {
	ID        int64
	Title     string
	Body      string
	Tags      string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInsightInput struct {
	Topic string
	Data  map[string]any
}

type CreateSuggestionInput struct {
	Title string
	Body  string
	Tags  *string
}

// --- UseCase Outputs ---

type CreateInsightOutput struct {
	Insight Insight
}

type ListInsightsOutput struct {
	Insights []Insight
}

type CreateSuggestionOutput struct {
	Suggestion Suggestion
}

type ListSuggestionsOutput struct {
	Suggestions []Suggestion
}
