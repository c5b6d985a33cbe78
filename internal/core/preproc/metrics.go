package preproc

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds optional Prometheus collectors for the pipeline.
// Any nil field is skipped.
type Metrics struct {
	// Translations counts translator calls. Labels: route, outcome (ok|fallback|skipped)
	Translations *prometheus.CounterVec

	// Posts counts processed posts. Labels: result (kept|empty)
	Posts *prometheus.CounterVec
}

func (m *Metrics) translation(route, outcome string) {
	if m == nil || m.Translations == nil {
		return
	}
	m.Translations.WithLabelValues(route, outcome).Inc()
}

func (m *Metrics) post(result string) {
	if m == nil || m.Posts == nil {
		return
	}
	m.Posts.WithLabelValues(result).Inc()
}
