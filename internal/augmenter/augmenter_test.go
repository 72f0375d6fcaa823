package augmenter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"egy-discovery/pkg/log"
	"egy-discovery/pkg/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newClient(t *testing.T, baseURL string) *openai.Client {
	t.Helper()
	c, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: baseURL})
	require.NoError(t, err)
	return c
}

func TestAugment(t *testing.T) {
	directive := Directive{SystemRole: "You are a lead generation expert.", UserContent: "photographers", Temperature: 0.7}

	t.Run("flag off makes no call", func(t *testing.T) {
		srv, calls := countingServer(t, http.StatusOK, `{"choices":[{"message":{"content":"x"}}]}`)
		a := New(log.NewNop(), newClient(t, srv.URL), Config{Enabled: false, APIKey: "sk-test"})

		out := a.Augment(context.Background(), directive)

		assert.Equal(t, StatusUnavailable, out.Status)
		assert.Equal(t, ReasonDisabled, out.Reason)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("missing key makes no call", func(t *testing.T) {
		srv, calls := countingServer(t, http.StatusOK, `{"choices":[{"message":{"content":"x"}}]}`)
		a := New(log.NewNop(), newClient(t, srv.URL), Config{Enabled: true})

		out := a.Augment(context.Background(), directive)

		assert.Equal(t, StatusUnavailable, out.Status)
		assert.Equal(t, ReasonMissingKey, out.Reason)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("nil client is unavailable", func(t *testing.T) {
		a := New(log.NewNop(), nil, Config{Enabled: true, APIKey: "sk-test"})
		out := a.Augment(context.Background(), directive)
		assert.Equal(t, StatusUnavailable, out.Status)
		assert.Equal(t, ReasonNoClient, out.Reason)
	})

	t.Run("success", func(t *testing.T) {
		srv, calls := countingServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  target wedding planners  "}}]}`)
		a := New(log.NewNop(), newClient(t, srv.URL), Config{Enabled: true, APIKey: "sk-test"})

		out := a.Augment(context.Background(), directive)

		assert.True(t, out.Enhanced())
		assert.Equal(t, "target wedding planners", out.Text)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server error fails once without retry", func(t *testing.T) {
		srv, calls := countingServer(t, http.StatusInternalServerError, `{"error":{"message":"boom"}}`)
		a := New(log.NewNop(), newClient(t, srv.URL), Config{Enabled: true, APIKey: "sk-test"})

		out := a.Augment(context.Background(), directive)

		assert.Equal(t, StatusFailed, out.Status)
		assert.Contains(t, out.Reason, "boom")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("empty content fails", func(t *testing.T) {
		srv, _ := countingServer(t, http.StatusOK, `{"choices":[{"message":{"content":"   "}}]}`)
		a := New(log.NewNop(), newClient(t, srv.URL), Config{Enabled: true, APIKey: "sk-test"})

		out := a.Augment(context.Background(), directive)

		assert.Equal(t, StatusFailed, out.Status)
		assert.Equal(t, ReasonEmptyContent, out.Reason)
	})
}

func recordingServer(t *testing.T) (*httptest.Server, *openai.Request) {
	t.Helper()
	var got openai.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestAugmentAppliesConfiguredLimits(t *testing.T) {
	tests := []struct {
		name            string
		cfg             Config
		directive       Directive
		wantMaxTokens   int
		wantTemperature float64
	}{
		{
			name:            "config lower than handler preference",
			cfg:             Config{MaxTokens: 50, Temperature: 0.1},
			directive:       Directive{MaxTokens: 500, Temperature: 0.7},
			wantMaxTokens:   50,
			wantTemperature: 0.1,
		},
		{
			name:            "handler preference within config",
			cfg:             Config{MaxTokens: 500, Temperature: 0.7},
			directive:       Directive{MaxTokens: 300, Temperature: 0.3},
			wantMaxTokens:   300,
			wantTemperature: 0.3,
		},
		{
			name:            "unset directive takes config",
			cfg:             Config{MaxTokens: 420, Temperature: 0.9},
			directive:       Directive{},
			wantMaxTokens:   420,
			wantTemperature: 0.9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, got := recordingServer(t)
			cfg := tc.cfg
			cfg.Enabled = true
			cfg.APIKey = "sk-test"
			a := New(log.NewNop(), newClient(t, srv.URL), cfg)

			d := tc.directive
			d.SystemRole = "role"
			d.UserContent = "content"
			out := a.Augment(context.Background(), d)

			require.True(t, out.Enhanced())
			assert.Equal(t, tc.wantMaxTokens, got.MaxTokens)
			assert.InDelta(t, tc.wantTemperature, got.Temperature, 1e-9)
		})
	}
}
