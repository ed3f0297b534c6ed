package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func TestCollector_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.Observe("alpha_power", OutcomeSuccess, 20*time.Millisecond, 4)
	c.Observe("alpha_power", OutcomeSuccess, 10*time.Millisecond, 2)
	c.Observe("alpha_power", OutcomeInvalid, time.Millisecond, 0)

	families := gather(t, reg)

	analyses := families["evident_analyses_total"]
	require.NotNil(t, analyses)
	assert.Len(t, analyses.GetMetric(), 2)

	rows := families["evident_result_rows_total"]
	require.NotNil(t, rows)
	assert.Equal(t, 6.0, rows.GetMetric()[0].GetCounter().GetValue())

	duration := families["evident_analysis_duration_seconds"]
	require.NotNil(t, duration)
	assert.Equal(t, uint64(3), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestNew_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.Observe("effect_size", OutcomeSuccess, time.Millisecond, 1)
	second.Observe("effect_size", OutcomeSuccess, time.Millisecond, 1)

	rows := gather(t, reg)["evident_result_rows_total"]
	require.NotNil(t, rows)
	assert.Equal(t, 2.0, rows.GetMetric()[0].GetCounter().GetValue())
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() { c.Observe("x", OutcomeSuccess, time.Second, 1) })
}
