package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metricLoop:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metricLoop
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecordAgentRoute(t *testing.T) {
	labels := map[string]string{"agent": "research"}
	before := counterValue(t, "egy_discovery_agent_routes_total", labels)
	RecordAgentRoute("research")
	after := counterValue(t, "egy_discovery_agent_routes_total", labels)

	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestRecordAugmentation(t *testing.T) {
	labels := map[string]string{"agent": "leadgen", "outcome": "failed"}
	before := counterValue(t, "egy_discovery_agent_augmentations_total", labels)
	RecordAugmentation("leadgen", "failed")
	after := counterValue(t, "egy_discovery_agent_augmentations_total", labels)

	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/api/health", http.StatusOK, 10*time.Millisecond)
	RecordWorkflowDispatch("webhook", false)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		"egy_discovery_http_requests_total",
		"egy_discovery_automation_dispatches_total",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in metrics output", name)
		}
	}
}
