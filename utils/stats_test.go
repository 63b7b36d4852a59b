package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.Update(1, 10, 500*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9)
	assert.Equal(t, 10.0, s.AveragePopulation)
	assert.Equal(t, 0.0, s.PopulationStdDev)

	s.Update(2, 20, 0)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.InDelta(t, 2.0, s.GenerationsPerSecond, 1e-9, "zero duration keeps the last rate")
	assert.InDelta(t, 15.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, math.Sqrt(50), s.PopulationStdDev, 1e-9)
}

func TestStatsWindow(t *testing.T) {
	t.Parallel()

	s := NewStats()
	for i := range populationWindow {
		s.Update(i+1, 0, time.Millisecond)
	}
	for i := range populationWindow {
		s.Update(populationWindow+i+1, 100, time.Millisecond)
	}
	assert.InDelta(t, 100.0, s.AveragePopulation, 1e-9, "old samples fall out of the window")
	assert.InDelta(t, 0.0, s.PopulationStdDev, 1e-9)
	assert.True(t, s.Runtime() >= 0)
}
