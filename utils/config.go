package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// MaxCells caps the number of cells a board may hold
const MaxCells = 1 << 24

// BoardConfig holds the board dimensions. Values are floored to whole cells
// when the grid is built.
type BoardConfig struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Columns returns the number of whole columns on the board
func (b BoardConfig) Columns() int {
	return int(math.Floor(b.Width))
}

// Rows returns the number of whole rows on the board
func (b BoardConfig) Rows() int {
	return int(math.Floor(b.Height))
}

// LifeConfig holds the configuration for the simulation
type LifeConfig struct {
	Board        BoardConfig `json:"board"`
	Seed         [][2]int    `json:"seed"`
	TickInterval float64     `json:"tick_interval"` // seconds between generations

	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Workers        int           `json:"workers"` // 0 uses runtime.NumCPU()
	UseMemoryPool  bool          `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() LifeConfig {
	return LifeConfig{
		Board: BoardConfig{
			Height: 10,
			Width:  10,
		},
		TickInterval:   1.0,
		FrameRate:      50 * time.Millisecond,
		MaxGenerations: 0,
		Workers:        0,
		UseMemoryPool:  true,
	}
}

// LoadConfig loads configuration from JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(filename string) (LifeConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a non-empty board and a
// usable tick interval.
func (c LifeConfig) Validate() error {
	if !finite(c.Board.Width) || c.Board.Width <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "board width must be positive, got %v", c.Board.Width)
	}
	if !finite(c.Board.Height) || c.Board.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "board height must be positive, got %v", c.Board.Height)
	}
	if cells := math.Floor(c.Board.Width) * math.Floor(c.Board.Height); cells > MaxCells {
		return errors.Wrapf(ErrInvalidConfig, "board %vx%v exceeds %d cells", c.Board.Width, c.Board.Height, MaxCells)
	}
	if c.Board.Columns() < 1 || c.Board.Rows() < 1 {
		return errors.Wrapf(ErrInvalidConfig, "board %vx%v has no whole cells", c.Board.Width, c.Board.Height)
	}
	if !finite(c.TickInterval) || c.TickInterval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick_interval must be non-negative, got %v", c.TickInterval)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be non-negative, got %d", c.Workers)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be non-negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_generations must be non-negative, got %d", c.MaxGenerations)
	}
	return nil
}

// SeedSet returns the seed coordinates as a (column, row) set
func (c LifeConfig) SeedSet() map[[2]int]struct{} {
	set := make(map[[2]int]struct{}, len(c.Seed))
	for _, coord := range c.Seed {
		set[coord] = struct{}{}
	}
	return set
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
