// Package metrics holds the prometheus collectors of the data layer. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catering"

type Metrics struct {
	registry       *prometheus.Registry
	degradedReads  *prometheus.CounterVec
	remoteRequests *prometheus.CounterVec
	remoteLatency  *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		degradedReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "federation",
			Name:      "degraded_reads_total",
			Help:      "Collection reads answered without one of the stores.",
		}, []string{"entity", "store"}),
		remoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Requests sent to the remote record service by method, resource and status code.",
		}, []string{"method", "resource", "code"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of requests to the remote record service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "resource"}),
	}
	m.registry.MustRegister(
		m.degradedReads,
		m.remoteRequests,
		m.remoteLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// DegradedRead counts a collection read that fell back to an empty result
// for store.
func (m *Metrics) DegradedRead(entity, store string) {
	if m == nil {
		return
	}
	m.degradedReads.WithLabelValues(entity, store).Inc()
}

// RemoteCall records one request to the remote service. status is 0 when no
// response arrived.
func (m *Metrics) RemoteCall(method, resource string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if status != 0 {
		code = strconv.Itoa(status)
	}
	m.remoteRequests.WithLabelValues(method, resource, code).Inc()
	m.remoteLatency.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}
