// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "egy_discovery"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	agentRoutes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "agent",
			Name:      "routes_total",
			Help:      "Agent requests by selected handler.",
		},
		[]string{"agent"},
	)

	augmentations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "agent",
			Name:      "augmentations_total",
			Help:      "Augmentation attempts by handler and outcome.",
		},
		[]string{"agent", "outcome"},
	)

	workflowDispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "automation",
			Name:      "dispatches_total",
			Help:      "Automation webhook/workflow dispatches by kind and success.",
		},
		[]string{"kind", "success"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		agentRoutes,
		augmentations,
		workflowDispatches,
	)
}

// Handler returns the HTTP handler serving Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAgentRoute records the handler selected for an agent request.
func RecordAgentRoute(agent string) {
	agentRoutes.WithLabelValues(agent).Inc()
}

// RecordAugmentation records an augmentation outcome (enhanced, unavailable, failed).
func RecordAugmentation(agent, outcome string) {
	augmentations.WithLabelValues(agent, outcome).Inc()
}

// RecordWorkflowDispatch records a webhook or workflow execution.
func RecordWorkflowDispatch(kind string, success bool) {
	workflowDispatches.WithLabelValues(kind, strconv.FormatBool(success)).Inc()
}
