package http

import (
	"time"

	"egy-discovery/internal/analysis"
	pkgErrors "egy-discovery/pkg/errors"
)

// --- Request DTOs ---

type createInsightReq struct {
	Topic *string        `json:"topic"`
	Data  map[string]any `json:"data"`
}

func (r createInsightReq) validate() error {
	if r.Topic == nil {
		return pkgErrors.NewBadRequestError("Missing required field: topic")
	}
	return nil
}

func (r createInsightReq) toInput() analysis.CreateInsightInput {
	return analysis.CreateInsightInput{
		Topic: *r.Topic,
		Data:  r.Data,
	}
}

type createSuggestionReq struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
	Tags  *string `json:"tags"`
}

func (r createSuggestionReq) validate() error {
	switch {
	case r.Title == nil:
		return pkgErrors.NewBadRequestError("Missing required field: title")
	case r.Body == nil:
		return pkgErrors.NewBadRequestError("Missing required field: body")
	}
	return nil
}

func (r createSuggestionReq) toInput() analysis.CreateSuggestionInput {
	return analysis.CreateSuggestionInput{
		Title: *r.Title,
		Body:  *r.Body,
		Tags:  r.Tags,
	}
}

// --- Response DTOs ---

type insightResp struct {
	ID        int64          `json:"id"`
	Topic     string         `json:"topic"`
	Summary   string         `json:"summary"`
	Score     int            `json:"score"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

func newInsightResp(in analysis.Insight) insightResp {
	return insightResp{
		ID:        in.ID,
		Topic:     in.Topic,
		Summary:   in.Summary,
		Score:     in.Score,
		Data:      in.Data,
		CreatedAt: in.CreatedAt,
	}
}

type suggestionResp struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func newSuggestionResp(s analysis.Suggestion) suggestionResp {
	return suggestionResp{
		ID:        s.ID,
		Title:     s.Title,
		Body:      s.Body,
		Tags:      s.Tags,
		CreatedAt: s.CreatedAt,
	}
}

func (h *handler) newInsightListResp(out analysis.ListInsightsOutput) []insightResp {
	items := make([]insightResp, len(out.Insights))
	for i, in := range out.Insights {
		items[i] = newInsightResp(in)
	}
	return items
}

func (h *handler) newSuggestionListResp(out analysis.ListSuggestionsOutput) []suggestionResp {
	items := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		items[i] = newSuggestionResp(s)
	}
	return items
}
