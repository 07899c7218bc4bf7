package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's prometheus collectors on a dedicated registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	upstreamLatency *prometheus.HistogramVec
}

// New creates a registry with request and upstream collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posdesk_requests_total",
				Help: "Handled HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "posdesk_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		upstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "posdesk_upstream_duration_seconds",
				Help:    "Latency of calls to the upstream butchery API by resource.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
	}
	m.registry.MustRegister(
		m.requestsTotal,
		m.requestLatency,
		m.upstreamLatency,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstream records the latency of one upstream API call.
func (m *Metrics) ObserveUpstream(resource string, d time.Duration) {
	m.upstreamLatency.WithLabelValues(resource).Observe(d.Seconds())
}

// Handler serves the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
