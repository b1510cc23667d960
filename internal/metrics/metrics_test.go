package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Scored(SourceRequest, 3)
	r.Scored(SourceScheduler, 12)
	r.Scored(SourceRequest, 0)
	r.CacheLookup(true)
	r.CacheLookup(false)
	r.CacheLookup(false)
	r.PassFinished(time.Now().Add(-time.Second))

	assert.Equal(t, float64(3), testutil.ToFloat64(r.scored.WithLabelValues(SourceRequest)))
	assert.Equal(t, float64(12), testutil.ToFloat64(r.scored.WithLabelValues(SourceScheduler)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.cacheLookups.WithLabelValues("miss")))

	n, err := testutil.GatherAndCount(reg, "board_recommendation_pass_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Scored(SourceRequest, 1)
		r.CacheLookup(true)
		r.PassFinished(time.Now())
	})
}
