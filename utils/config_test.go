package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	assert.Equal(t, 10.0, c.Board.Height)
	assert.Equal(t, 10.0, c.Board.Width)
	assert.Equal(t, 1.0, c.TickInterval)
	assert.Empty(t, c.Seed)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overlays file on defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `{
			"board": {"height": 4.9, "width": 8},
			"seed": [[1, 0], [1, 1]],
			"tick_interval": 0.5
		}`)

		c, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 4, c.Board.Rows())
		assert.Equal(t, 8, c.Board.Columns())
		assert.Equal(t, [][2]int{{1, 0}, {1, 1}}, c.Seed)
		assert.Equal(t, 0.5, c.TickInterval)
		assert.Equal(t, 50*time.Millisecond, c.FrameRate, "unset fields keep defaults")
		assert.True(t, c.UseMemoryPool)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(writeConfig(t, `{"board": `))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(writeConfig(t, `{"tick_interval": -1}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *LifeConfig)
		valid  bool
	}{
		{"defaults", func(c *LifeConfig) {}, true},
		{"zero tick interval", func(c *LifeConfig) { c.TickInterval = 0 }, true},
		{"fractional board", func(c *LifeConfig) { c.Board = BoardConfig{Width: 1.5, Height: 1.2} }, true},
		{"zero width", func(c *LifeConfig) { c.Board.Width = 0 }, false},
		{"negative height", func(c *LifeConfig) { c.Board.Height = -2 }, false},
		{"width floors to zero", func(c *LifeConfig) { c.Board.Width = 0.9 }, false},
		{"nan width", func(c *LifeConfig) { c.Board.Width = math.NaN() }, false},
		{"infinite height", func(c *LifeConfig) { c.Board.Height = math.Inf(1) }, false},
		{"negative interval", func(c *LifeConfig) { c.TickInterval = -0.01 }, false},
		{"nan interval", func(c *LifeConfig) { c.TickInterval = math.NaN() }, false},
		{"negative workers", func(c *LifeConfig) { c.Workers = -1 }, false},
		{"negative frame rate", func(c *LifeConfig) { c.FrameRate = -time.Second }, false},
		{"board too large", func(c *LifeConfig) { c.Board = BoardConfig{Width: 1e10, Height: 1e10} }, false},
		{"board one past cap", func(c *LifeConfig) { c.Board = BoardConfig{Width: MaxCells + 1, Height: 1} }, false},
		{"board at cap", func(c *LifeConfig) { c.Board = BoardConfig{Width: MaxCells, Height: 1} }, true},
		{"negative generations", func(c *LifeConfig) { c.MaxGenerations = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSeedSet(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	c.Seed = [][2]int{{1, 2}, {1, 2}, {3, 4}}
	set := c.SeedSet()
	assert.Len(t, set, 2)
	assert.Contains(t, set, [2]int{1, 2})
	assert.Contains(t, set, [2]int{3, 4})
}
