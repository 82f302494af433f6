// Package metrics exposes prometheus instrumentation for the HTTP surface
// and the export pipeline.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ExportsTotal    *prometheus.CounterVec
}

func New() (*Metrics, error) {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkvoice_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "inkvoice_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ExportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkvoice_exports_total",
			Help: "PDF exports by variant and outcome.",
		}, []string{"variant", "outcome"}),
	}

	for _, c := range []prometheus.Collector{m.RequestsTotal, m.RequestDuration, m.ExportsTotal} {
		if err := prometheus.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveExport records one export attempt.
func (m *Metrics) ObserveExport(variant string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.ExportsTotal.WithLabelValues(variant, outcome).Inc()
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

var Module = fx.Module("observability.metrics",
	fx.Provide(New),
)
