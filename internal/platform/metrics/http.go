// File: internal/platform/metrics/http.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bff_create_account"

// HTTPBuckets are latency buckets in seconds. Most of the latency is the
// downstream provisioning call, hence the long tail.
var HTTPBuckets = []float64{0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10}

// HTTPMetrics holds the request collectors of the BFF.
type HTTPMetrics struct {
	Registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	RequestsInProgress prometheus.Gauge
}

// NewHTTPMetrics creates the collectors on a private registry, together with
// the Go runtime and process collectors.
func NewHTTPMetrics() *HTTPMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewHTTPMetricsWithRegistry(reg)
}

// NewHTTPMetricsWithRegistry creates the collectors on reg.
func NewHTTPMetricsWithRegistry(reg *prometheus.Registry) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route template, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route template",
				Buckets:   HTTPBuckets,
			},
			[]string{"route"},
		),
		RequestsInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_progress",
				Help:      "Current number of HTTP requests being processed",
			},
		),
	}
}

// RecordRequest records one finished request. route must be the route
// template, never the raw path.
func (m *HTTPMetrics) RecordRequest(route, method string, statusCode int, duration time.Duration) {
	route = NormalizeRoute(route)
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// IsHealthCheckEndpoint reports paths that are not worth measuring.
func IsHealthCheckEndpoint(path string) bool {
	switch path {
	case "/metrics", "/health":
		return true
	}
	return false
}

// NormalizeRoute maps unmatched routes to a single label value.
func NormalizeRoute(route string) string {
	if route == "" {
		return "unknown"
	}
	return route
}
