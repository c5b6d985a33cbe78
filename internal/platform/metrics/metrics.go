// Package metrics owns the Prometheus registry shared by a process
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is a per-process registry with the standard HTTP metrics.
// A nil *Collector is valid and records nothing.
type Collector struct {
	reg       *prometheus.Registry
	namespace string

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a registry for service with go/process collectors and a build info gauge
func New(service, version, commit string) *Collector {
	c := &Collector{
		reg:       prometheus.NewRegistry(),
		namespace: strings.ReplaceAll(service, "-", "_"),
	}
	c.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	info := c.Gauge("build_info", "Build information", "version", "commit")
	info.WithLabelValues(version, commit).Set(1)

	c.httpRequests = c.Counter("http_requests_total", "HTTP requests by route and status", "method", "route", "status")
	c.httpDuration = c.Histogram("http_request_duration_seconds", "HTTP request latency", "method", "route")
	return c
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Counter registers a namespaced counter vector
func (c *Collector) Counter(name, help string, labels ...string) *prometheus.CounterVec {
	v := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: c.namespace, Name: name, Help: help}, labels)
	c.reg.MustRegister(v)
	return v
}

// Gauge registers a namespaced gauge vector
func (c *Collector) Gauge(name, help string, labels ...string) *prometheus.GaugeVec {
	v := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: c.namespace, Name: name, Help: help}, labels)
	c.reg.MustRegister(v)
	return v
}

// Histogram registers a namespaced histogram vector with default buckets
func (c *Collector) Histogram(name, help string, labels ...string) *prometheus.HistogramVec {
	v := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      name,
		Help:      help,
		Buckets:   prometheus.DefBuckets,
	}, labels)
	c.reg.MustRegister(v)
	return v
}

// ObserveHTTP records one finished request. route should be the matched pattern, not the raw path.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the text exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}
