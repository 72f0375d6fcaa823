package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"egy-discovery/internal/agent"
	"egy-discovery/pkg/log"
)

type mockUseCase struct {
	routeIn agent.RouteInput
	err     error
}

func (m *mockUseCase) Route(ctx context.Context, input agent.RouteInput) (agent.RouteOutput, error) {
	m.routeIn = input
	if m.err != nil {
		return agent.RouteOutput{}, m.err
	}
	return agent.RouteOutput{
		Agent:  agent.Research,
		Result: agent.Result{"summary": "Desk research on: " + input.Prompt},
	}, nil
}

func (m *mockUseCase) Classify(ctx context.Context, input agent.ClassifyInput) (agent.ClassifyOutput, error) {
	return agent.ClassifyOutput{Agent: agent.LeadGen, Source: "keyword", Keyword: "lead"}, nil
}

func setupRouter(uc agent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func TestRoute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupRouter(uc)

		w := httptest.NewRecorder()
		body := `{"prompt":"hotels","params":{"topic":"diving"}}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/agents/route", strings.NewReader(body)))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var env envelope
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		var data routeResp
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if !data.OK || data.Agent != "research" {
			t.Errorf("unexpected data %+v", data)
		}
		if data.Result["summary"] != "Desk research on: hotels" {
			t.Errorf("unexpected result %v", data.Result)
		}
		if uc.routeIn.Params["topic"] != "diving" {
			t.Errorf("params not passed through: %v", uc.routeIn.Params)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/agents/route", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.routeIn.Prompt != "" {
			t.Errorf("expected empty prompt, got %q", uc.routeIn.Prompt)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/agents/route", strings.NewReader(`{"prompt":`)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("params must be an object", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/agents/route", strings.NewReader(`{"prompt":"x","params":[1]}`)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("use case error", func(t *testing.T) {
		r := setupRouter(&mockUseCase{err: agent.ErrNoDefaultHandler})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/agents/route", strings.NewReader(`{"prompt":"x"}`)))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestClassify(t *testing.T) {
	r := setupRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/agents/classify", strings.NewReader(`{"prompt":"find a lead"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var data classifyResp
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Agent != "leadgen" || data.Keyword != "lead" {
		t.Errorf("unexpected data %+v", data)
	}
}
