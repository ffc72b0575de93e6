package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector handles Prometheus metrics collection. It owns its
// registry so several collectors can coexist in tests.
type MetricsCollector struct {
	serviceName string
	registry    *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	allocationsTotal    *prometheus.CounterVec
	allocationDuration  *prometheus.HistogramVec
	eligibilityRejected *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(serviceName string) *MetricsCollector {
	m := &MetricsCollector{
		serviceName: serviceName,
		registry:    prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code", "service"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "service"},
		),
		allocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "priest_allocations_total",
				Help: "Total number of allocation attempts by scheme and outcome",
			},
			[]string{"scheme", "outcome", "service"},
		),
		allocationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "priest_allocation_duration_seconds",
				Help:    "Duration of the allocation pipeline in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"scheme", "service"},
		),
		eligibilityRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "priest_eligibility_rejections_total",
				Help: "Allocations that ended with no eligible priest, by the pass that emptied the set",
			},
			[]string{"pass", "service"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.allocationsTotal,
		m.allocationDuration,
		m.eligibilityRejected,
	)
	return m
}

// RecordHTTPRequest records HTTP request metrics
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCode, m.serviceName).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint, m.serviceName).Observe(duration.Seconds())
}

// AllocationCompleted records one finished allocation.
func (m *MetricsCollector) AllocationCompleted(scheme, outcome string, elapsed time.Duration) {
	m.allocationsTotal.WithLabelValues(scheme, outcome, m.serviceName).Inc()
	m.allocationDuration.WithLabelValues(scheme, m.serviceName).Observe(elapsed.Seconds())
}

func (m *MetricsCollector) EligibilityRejected(pass string) {
	m.eligibilityRejected.WithLabelValues(pass, m.serviceName).Inc()
}

// Handler returns the Prometheus metrics handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GinMiddleware records request count and latency per route template.
func (m *MetricsCollector) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
