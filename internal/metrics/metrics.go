package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "citylaw"

// Metrics contains the site generator's collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	PagesRendered      *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	BuildDuration      prometheus.Histogram
	BuildsTotal        *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates a Metrics instance on a fresh registry with Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		PagesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pages",
				Name:      "rendered_total",
				Help:      "Total number of pages rendered, by page kind",
			},
			[]string{"kind"},
		),

		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inventory",
				Name:      "validation_failures_total",
				Help:      "Total number of data pack validation failures, by pack and rule",
			},
			[]string{"pack", "kind"},
		),

		BuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "build",
				Name:      "duration_seconds",
				Help:      "Static build duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "build",
				Name:      "runs_total",
				Help:      "Total number of static builds, by result",
			},
			[]string{"result"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of preview server requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Preview server request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.PagesRendered,
		m.ValidationFailures,
		m.BuildDuration,
		m.BuildsTotal,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// PageRendered counts one rendered page of kind.
func (m *Metrics) PageRendered(kind string) {
	if m == nil {
		return
	}
	m.PagesRendered.WithLabelValues(kind).Inc()
}

// ValidationFailed counts one rejected data pack.
func (m *Metrics) ValidationFailed(pack, kind string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(pack, kind).Inc()
}

// ObserveBuild records a finished build.
func (m *Metrics) ObserveBuild(d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.BuildsTotal.WithLabelValues(result).Inc()
	m.BuildDuration.Observe(d.Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
