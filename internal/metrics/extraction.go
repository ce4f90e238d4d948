// Package metrics holds the Prometheus collectors for the extraction pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"resumeparser/internal/model"
)

// Extraction counts parse outcomes per document kind and times the pipeline.
type Extraction struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cleanup  prometheus.Counter
}

// NewExtraction registers the extraction collectors with reg.
func NewExtraction(reg prometheus.Registerer) (*Extraction, error) {
	m := &Extraction{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_extractions_total",
				Help: "Total number of parse requests by document kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_extraction_duration_seconds",
				Help:    "Time spent storing, reading and extracting an upload.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		cleanup: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resume_temp_cleanup_failures_total",
			Help: "Temp files that could not be removed after a request.",
		}),
	}

	for _, c := range []prometheus.Collector{m.total, m.duration, m.cleanup} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one finished parse request. A nil receiver is a no-op.
func (m *Extraction) Observe(kind model.DocumentKind, outcome model.Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(string(kind), string(outcome)).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

// CleanupFailed counts a temp file that outlived its request.
func (m *Extraction) CleanupFailed() {
	if m == nil {
		return
	}
	m.cleanup.Inc()
}
