package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"egy-discovery/internal/marketing/repository/memory"
	"egy-discovery/internal/marketing/usecase"
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/sequence"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	uc := usecase.New(memory.New(sequence.New(1)), log.NewNop())
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCampaigns(t *testing.T) {
	r := setupRouter()

	if w := do(r, http.MethodPost, "/api/marketing/campaigns", `{"platform":"meta"}`); w.Code != http.StatusBadRequest ||
		!strings.Contains(w.Body.String(), "Missing required field: name") {
		t.Fatalf("expected missing name, got %d %s", w.Code, w.Body.String())
	}

	if w := do(r, http.MethodPost, "/api/marketing/campaigns", `{"platform":"meta","name":"Summer"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	do(r, http.MethodPost, "/api/marketing/campaigns", `{"platform":"google","name":"Search"}`)

	w := do(r, http.MethodGet, "/api/marketing/campaigns?platform=meta", "")
	var env struct {
		Data []campaignResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Status != "draft" {
		t.Errorf("unexpected campaigns %+v", env.Data)
	}
}

func TestMetrics(t *testing.T) {
	r := setupRouter()

	if w := do(r, http.MethodPost, "/api/marketing/metrics", `{"clicks":3}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	do(r, http.MethodPost, "/api/marketing/metrics", `{"campaign_id":1,"date":"2024-05-01","clicks":3}`)
	do(r, http.MethodPost, "/api/marketing/metrics", `{"campaign_id":2,"date":"2024-05-02"}`)

	w := do(r, http.MethodGet, "/api/marketing/metrics?campaign_id=1", "")
	var env struct {
		Data []metricResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Clicks != 3 {
		t.Errorf("unexpected metrics %+v", env.Data)
	}

	if w := do(r, http.MethodGet, "/api/marketing/metrics?campaign_id=abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad campaign_id, got %d", w.Code)
	}
}
