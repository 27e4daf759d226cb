package middleware

import (
	"time"

	"inventory/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.ServerMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(serverMetrics *metrics.ServerMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: serverMetrics}
}

// Handle observes the request after the inner handlers and the error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.metrics.Enabled {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.metrics.Requests.WithLabelValues(method, route, metrics.StatusClass(c.Response().Status)).Inc()
		m.metrics.LatencyMS.WithLabelValues(method, route).Observe(float64(time.Since(start).Microseconds()) / 1000)

		return err
	}
}
