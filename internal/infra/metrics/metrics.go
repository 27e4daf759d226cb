// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"inventory/config"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "inventory"

// ServerMetrics holds the HTTP collectors registered on a private registry.
type ServerMetrics struct {
	Enabled   bool
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	registry  *prometheus.Registry
}

// NewServerMetrics registers the HTTP collectors together with the Go and process collectors.
func NewServerMetrics(cfg *config.Config) *ServerMetrics {
	namespace := defaultNamespace
	enabled := true
	if cfg.Metrics != nil {
		enabled = cfg.Metrics.Enabled
		if cfg.Metrics.Namespace != "" {
			namespace = cfg.Metrics.Namespace
		}
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		requests,
		latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &ServerMetrics{
		Enabled:   enabled,
		Requests:  requests,
		LatencyMS: latency,
		registry:  registry,
	}
}

// Register adds collectors owned by other components, such as the database pool.
func (m *ServerMetrics) Register(cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := m.registry.Register(c); err != nil {
			return errors.Wrap(err, "failed to register collector")
		}
	}

	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// StatusClass converts a status code to its range (2xx, 3xx, 4xx, 5xx).
func StatusClass(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
