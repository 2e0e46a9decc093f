package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalog_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	requestErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalog_http_request_errors_total",
			Help: "Total HTTP requests answered with a 5xx status",
		},
		[]string{"method", "path"},
	)
)

// RegisterMetrics registers the collectors with the default registry.
// Call once at startup; the middleware works without registration, which
// keeps repeated app construction in tests panic-free.
func RegisterMetrics() {
	prometheus.MustRegister(requestsTotal, requestErrorsTotal)
}

func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		path := c.Route().Path
		requestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		if status >= fiber.StatusInternalServerError {
			requestErrorsTotal.WithLabelValues(c.Method(), path).Inc()
		}
		return err
	}
}
