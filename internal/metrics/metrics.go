// Package metrics exposes Prometheus metrics for power and effect-size analyses.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "evident"

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector records analysis counts, durations and result sizes
type Collector struct {
	registry prometheus.Registerer

	analyses *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.CounterVec
}

// New registers the analysis metrics.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	c := &Collector{
		registry: registry,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyses run, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of an analysis, by kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_rows_total",
			Help:      "Result rows produced, by kind.",
		}, []string{"kind"}),
	}
	c.analyses = register(registry, c.analyses)
	c.duration = register(registry, c.duration)
	c.rows = register(registry, c.rows)
	return c
}

// register returns the already-registered collector when one exists
func register[T prometheus.Collector](registry prometheus.Registerer, collector T) T {
	if err := registry.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return collector
}

// Observe records one finished analysis
func (c *Collector) Observe(kind, outcome string, elapsed time.Duration, rows int) {
	if c == nil {
		return
	}
	c.analyses.WithLabelValues(kind, outcome).Inc()
	c.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if rows > 0 {
		c.rows.WithLabelValues(kind).Add(float64(rows))
	}
}
