package utils

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrialResultRate(t *testing.T) {
	r := TrialResult{Generations: 1000, Elapsed: 500 * time.Millisecond}
	assert.InDelta(t, 2000, r.GenerationsPerSecond(), 1e-9)
	assert.Zero(t, TrialResult{Generations: 10}.GenerationsPerSecond())
}

func TestStatsTrials(t *testing.T) {
	s := NewStats()
	assert.Zero(t, s.MeanRate())

	s.AddTrial(TrialResult{Trial: 1, Generations: 100, Elapsed: time.Second})
	s.AddTrial(TrialResult{Trial: 2, Generations: 100, Elapsed: 250 * time.Millisecond})

	assert.Equal(t, 200, s.TotalGenerations)
	assert.InDelta(t, 250, s.MeanRate(), 1e-9)
	assert.InDelta(t, 400, s.BestRate(), 1e-9)
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	assert.InDelta(t, 10, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 100, s.AveragePopulation, 1e-9)

	s.Update(2, 200, 0)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.InDelta(t, 110, s.AveragePopulation, 1e-9)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveStep("delta", 12)
	m.ObserveStep("delta", 40)
	m.ObserveStep("dense", 99)
	m.ObserveTrial("delta", TrialResult{Generations: 10, Elapsed: time.Second})

	assert.InDelta(t, 2, testutil.ToFloat64(m.Generations.WithLabelValues("delta")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Generations.WithLabelValues("dense")), 1e-9)
	assert.InDelta(t, 10, testutil.ToFloat64(m.TrialRate.WithLabelValues("delta")), 1e-9)
	assert.Equal(t, 2, testutil.CollectAndCount(m.Frontier))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveStep("delta", 1) })
}
