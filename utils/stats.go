package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
	lastUpdate           time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished generation observed at now
func (s *Stats) Update(generation int, population int, now time.Time) {
	s.TotalGenerations = generation
	s.Population = population

	if !s.lastUpdate.IsZero() {
		if duration := now.Sub(s.lastUpdate); duration > 0 {
			s.GenerationsPerSecond = 1.0 / duration.Seconds()
		}
	}
	s.lastUpdate = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Reset starts a fresh run at now
func (s *Stats) Reset(now time.Time) {
	*s = Stats{StartTime: now}
}

// String formats the stats as a single status line
func (s *Stats) String() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec",
		s.TotalGenerations, s.Population, s.AveragePopulation, s.GenerationsPerSecond)
}
