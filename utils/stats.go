package utils

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// populationWindow is the number of recent generations kept for population stats
const populationWindow = 64

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PopulationStdDev     float64
	TotalGenerations     int
	StartTime            time.Time

	populations []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one advanced generation. duration is the wall time since the
// previous advance.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	s.populations = append(s.populations, float64(population))
	if len(s.populations) > populationWindow {
		s.populations = s.populations[1:]
	}

	if len(s.populations) < 2 {
		s.AveragePopulation = float64(population)
		s.PopulationStdDev = 0
		return
	}
	s.AveragePopulation, s.PopulationStdDev = stat.MeanStdDev(s.populations, nil)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
