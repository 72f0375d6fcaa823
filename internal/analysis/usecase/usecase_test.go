package usecase

import (
	"context"
	"testing"

	"egy-discovery/internal/analysis"
	"egy-discovery/internal/analysis/repository/memory"
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want int
	}{
		{name: "empty", data: map[string]any{}, want: 0},
		{name: "roas only", data: map[string]any{"roas": 2.5}, want: 50},
		{name: "roas capped", data: map[string]any{"roas": 10.0}, want: 60},
		{name: "ctr capped", data: map[string]any{"ctr": 0.9}, want: 40},
		{name: "both", data: map[string]any{"roas": 1.5, "ctr": 0.05}, want: 35},
		{name: "null treated as zero", data: map[string]any{"roas": nil, "ctr": 0.1}, want: 10},
		{name: "numeric string", data: map[string]any{"roas": "2"}, want: 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Score(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Score(map[string]any{"roas": []any{1}})
	assert.ErrorIs(t, err, analysis.ErrInvalidMetric)
}

func TestCreateInsightSummary(t *testing.T) {
	uc := New(memory.New(sequence.New(1)), log.NewNop())

	out, err := uc.CreateInsight(context.Background(), analysis.CreateInsightInput{
		Topic: "diving",
		Data:  map[string]any{"roas": 2.5, "ctr": 0.1},
	})
	require.NoError(t, err)
	assert.Equal(t, 60, out.Insight.Score)
	assert.Equal(t, "Insight for diving: ROAS=2.5, CTR=0.1. Score=60/100.", out.Insight.Summary)

	out, err = uc.CreateInsight(context.Background(), analysis.CreateInsightInput{Topic: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Insight for x: ROAS=0, CTR=0. Score=0/100.", out.Insight.Summary)
}

func TestSuggestionsTagsAndOrder(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.New(sequence.New(1)), log.NewNop())

	empty := ""
	_, err := uc.CreateSuggestion(ctx, analysis.CreateSuggestionInput{Title: "a", Body: "b"})
	require.NoError(t, err)
	_, err = uc.CreateSuggestion(ctx, analysis.CreateSuggestionInput{Title: "c", Body: "d", Tags: &empty})
	require.NoError(t, err)

	out, err := uc.ListSuggestions(ctx)
	require.NoError(t, err)
	require.Len(t, out.Suggestions, 2)
	assert.Equal(t, "c", out.Suggestions[0].Title)
	assert.Equal(t, "", out.Suggestions[0].Tags)
	assert.Equal(t, analysis.DefaultTags, out.Suggestions[1].Tags)
}
