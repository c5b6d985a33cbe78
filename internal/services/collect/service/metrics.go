package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"tweetsnlp/internal/platform/metrics"
)

// Metrics counts pages and posts seen by the collector. Nil is a no-op.
type Metrics struct {
	Pages *prometheus.CounterVec // labels: outcome (ok|error)
	Posts *prometheus.CounterVec // labels: result (kept|dropped)
}

// NewMetrics registers the collector counters on c
func NewMetrics(c *metrics.Collector) *Metrics {
	if c == nil {
		return nil
	}
	return &Metrics{
		Pages: c.Counter("collect_pages_total", "Search pages fetched.", "outcome"),
		Posts: c.Counter("collect_posts_total", "Posts seen while flattening pages.", "result"),
	}
}

func (m *Metrics) page(outcome string) {
	if m == nil || m.Pages == nil {
		return
	}
	m.Pages.WithLabelValues(outcome).Inc()
}

func (m *Metrics) posts(kept, dropped int) {
	if m == nil || m.Posts == nil {
		return
	}
	m.Posts.WithLabelValues("kept").Add(float64(kept))
	m.Posts.WithLabelValues("dropped").Add(float64(dropped))
}
