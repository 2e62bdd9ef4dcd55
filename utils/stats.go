package utils

import (
	"time"
)

// TrialResult is the outcome of one benchmark trial
type TrialResult struct {
	Trial       int
	Generations int
	Elapsed     time.Duration
	Population  int
}

// GenerationsPerSecond returns the throughput of the trial
func (r TrialResult) GenerationsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Generations) / r.Elapsed.Seconds()
}

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Trials               []TrialResult
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a rendered generation and the time it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// AddTrial records a finished benchmark trial
func (s *Stats) AddTrial(r TrialResult) {
	s.Trials = append(s.Trials, r)
	s.TotalGenerations += r.Generations
}

// MeanRate returns the mean generations per second over all trials
func (s *Stats) MeanRate() float64 {
	if len(s.Trials) == 0 {
		return 0
	}
	var sum float64
	for _, r := range s.Trials {
		sum += r.GenerationsPerSecond()
	}
	return sum / float64(len(s.Trials))
}

// BestRate returns the highest generations per second over all trials
func (s *Stats) BestRate() float64 {
	var best float64
	for _, r := range s.Trials {
		best = max(best, r.GenerationsPerSecond())
	}
	return best
}
