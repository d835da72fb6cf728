package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toyz/routedoc/internal/swaggerui"
)

// MetricsPath is where the Prometheus exposition is served
const MetricsPath = "/metrics"

// MetricsNamespace prefixes every metric name
const MetricsNamespace = "routedoc"

// Metrics counts the requests a documentation server answers. Each server
// owns its registry so several can run in one process.
type Metrics struct {
	registry *prometheus.Registry
	base     string

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors of a server of the given kind with the
// UI mounted at base
func NewMetrics(kind Kind, base string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	labels := prometheus.Labels{"server": string(kind)}

	return &Metrics{
		registry: registry,
		base:     swaggerui.NormalizeBase(base),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   MetricsNamespace,
			Name:        "docs_requests_total",
			Help:        "Total number of requests answered by the documentation server",
			ConstLabels: labels,
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   MetricsNamespace,
			Name:        "docs_request_duration_seconds",
			Help:        "Time spent answering documentation requests",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Observe records one answered request
func (m *Metrics) Observe(path string, status int, elapsed time.Duration) {
	if status == 0 {
		status = http.StatusOK
	}
	route := m.route(path)
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the collectors, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// route maps a request path onto a fixed label set so arbitrary paths cannot
// grow the series count
func (m *Metrics) route(path string) string {
	switch path {
	case "/":
		return "root"
	case m.base, m.base + "/":
		return "page"
	case m.base + "/" + swaggerui.SpecFile:
		return "spec"
	case MetricsPath:
		return "metrics"
	default:
		return "other"
	}
}
