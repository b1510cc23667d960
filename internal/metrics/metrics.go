// Package metrics holds the Prometheus collectors of the board service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sources of scored recommendations.
const (
	SourceRequest   = "request"
	SourceScheduler = "scheduler"
)

// Recorder counts scoring work. A nil *Recorder records nothing.
type Recorder struct {
	scored       *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	passDuration prometheus.Histogram
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		scored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_recommendations_scored_total",
				Help: "Job/candidate pairs run through the compatibility scorer",
			},
			[]string{"source"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_recommendation_cache_lookups_total",
				Help: "Recommendation cache lookups by result",
			},
			[]string{"result"},
		),
		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "board_recommendation_pass_duration_seconds",
			Help:    "Duration of the scheduled recommendation pass",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Scored adds n scored pairs for source.
func (r *Recorder) Scored(source string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.scored.WithLabelValues(source).Add(float64(n))
}

// CacheLookup records a recommendation cache hit or miss.
func (r *Recorder) CacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// PassFinished observes the duration of a recommendation pass begun at start.
func (r *Recorder) PassFinished(start time.Time) {
	if r == nil {
		return
	}
	r.passDuration.Observe(time.Since(start).Seconds())
}
