package n8n

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteWebhook(t *testing.T) {
	t.Run("json response", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "abc", r.Header.Get("X-Trace"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"received":true}`))
		}))
		defer srv.Close()

		resp := New(Config{}).ExecuteWebhook(context.Background(), WebhookRequest{
			Method:  "put",
			URL:     srv.URL,
			Headers: map[string]string{"X-Trace": "abc"},
			Body:    map[string]any{"lead": "x"},
		})

		assert.True(t, resp.Success)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"received": true}, resp.Body)
		assert.Equal(t, map[string]any{"lead": "x"}, gotBody)
	})

	t.Run("text response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Workflow was started"))
		}))
		defer srv.Close()

		resp := New(Config{}).ExecuteWebhook(context.Background(), WebhookRequest{URL: srv.URL})

		assert.True(t, resp.Success)
		assert.Equal(t, "Workflow was started", resp.Body)
	})

	t.Run("invalid json falls back to text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		resp := New(Config{}).ExecuteWebhook(context.Background(), WebhookRequest{URL: srv.URL})

		assert.Equal(t, "not json", resp.Body)
	})

	t.Run("remote failure keeps status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		resp := New(Config{}).ExecuteWebhook(context.Background(), WebhookRequest{URL: srv.URL})

		assert.False(t, resp.Success)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		resp := New(Config{}).ExecuteWebhook(context.Background(), WebhookRequest{URL: url})

		assert.False(t, resp.Success)
		assert.Equal(t, 0, resp.StatusCode)
		body := resp.Body.(map[string]any)
		assert.Equal(t, KindTransport, body["kind"])
		assert.NotEmpty(t, body["error"])
	})
}

func TestExecuteWorkflow(t *testing.T) {
	t.Run("path and api key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/workflows/42/execute", r.URL.Path)
			assert.Equal(t, "n8n-key", r.Header.Get(HeaderAPIKey))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"executionId":"e1"}`))
		}))
		defer srv.Close()

		resp := New(Config{}).ExecuteWorkflow(context.Background(), WorkflowRequest{
			BaseURL:    srv.URL + "/",
			WorkflowID: "42",
			APIKey:     "n8n-key",
		})

		assert.True(t, resp.Success)
		assert.Equal(t, map[string]any{"executionId": "e1"}, resp.Body)
	})

	t.Run("no api key header when empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get(HeaderAPIKey))
		}))
		defer srv.Close()

		resp := New(Config{}).ExecuteWorkflow(context.Background(), WorkflowRequest{BaseURL: srv.URL, WorkflowID: "1"})
		assert.True(t, resp.Success)
	})

	t.Run("bad base url", func(t *testing.T) {
		resp := New(Config{}).ExecuteWorkflow(context.Background(), WorkflowRequest{BaseURL: "://bad", WorkflowID: "1"})
		assert.Equal(t, 0, resp.StatusCode)
		assert.False(t, resp.Success)
	})
}
