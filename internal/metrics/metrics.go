package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Request volume
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tutor_requests_total",
		Help: "Total number of HTTP requests received.",
	}, []string{"method", "path", "status"})

	// Concurrency (in flight)
	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tutor_active_requests",
		Help: "Current number of in-flight requests.",
	})

	// Handler latency
	RequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tutor_request_duration_seconds",
		Help:    "End-to-end handler duration.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	})

	// Upstream completion calls
	CompletionRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tutor_completion_requests_total",
		Help: "Total calls made to the upstream completion API.",
	})
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		ActiveRequests,
		RequestDurationSeconds,
		CompletionRequestsTotal,
	)
}

// Middleware records volume, in-flight count and latency for every request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ActiveRequests.Inc()
			start := time.Now()
			err := next(c)
			RequestDurationSeconds.Observe(time.Since(start).Seconds())
			ActiveRequests.Dec()

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			RequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				httpStatusLabel(status),
			).Inc()
			return err
		}
	}
}

func httpStatusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
