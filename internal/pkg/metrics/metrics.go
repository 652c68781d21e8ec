package metrics

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cycle outcomes and item results used as label values.
const (
	CycleCompleted  = "completed"
	CycleSkipped    = "skipped"
	CycleScanFailed = "scan_failed"

	ItemNotified     = "notified"
	ItemNotifyFailed = "notify_failed"
	ItemRescheduled  = "rescheduled"
	ItemWriteFailed  = "write_failed"
)

// Metrics bundles the collectors of the service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	cycles        *prometheus.CounterVec
	items         *prometheus.CounterVec
	cycleDuration prometheus.Histogram

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "berries_reminder_cycles_total",
				Help: "Reminder dispatch cycles by outcome (completed, skipped, scan_failed).",
			},
			[]string{"outcome"},
		),
		items: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "berries_reminder_items_total",
				Help: "Due berries visited by the dispatcher by result.",
			},
			[]string{"result"},
		),
		cycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "berries_reminder_cycle_duration_seconds",
				Help:    "Duration of reminder dispatch cycles.",
				Buckets: prometheus.DefBuckets,
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.cycles, m.items, m.cycleDuration,
		m.requestsTotal, m.requestDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CycleOutcome records how a dispatch cycle ended and how long it took.
// A nil receiver is a no-op so callers need not guard optional metrics.
func (m *Metrics) CycleOutcome(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.cycles.WithLabelValues(outcome).Inc()
	m.cycleDuration.Observe(took.Seconds())
}

// ItemResult counts n items with the given result.
func (m *Metrics) ItemResult(result string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.items.WithLabelValues(result).Add(float64(n))
}

// Middleware records request counts and latencies.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Render the error now so the recorded status is the one sent.
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			m.requestsTotal.WithLabelValues(c.Request().Method, c.Path(), fmt.Sprintf("%d", status)).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, c.Path()).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
