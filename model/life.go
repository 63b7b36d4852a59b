package model

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// InitMode selects how the first generation is populated
type InitMode int

const (
	// InitRandom flips a fair coin for every cell
	InitRandom InitMode = iota
	// InitSeeded marks exactly the configured seed coordinates alive
	InitSeeded
)

func (m InitMode) String() string {
	switch m {
	case InitRandom:
		return "random"
	case InitSeeded:
		return "seeded"
	default:
		return "unknown"
	}
}

// RandomSource is the coin used for random initialization. *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Life owns one board and advances it on the scheduler's cadence
type Life struct {
	mu         sync.RWMutex
	grid       *Grid
	scheduler  *Scheduler
	pool       *SnapshotPool
	workers    int
	generation int
}

// Initialize validates config and builds the first generation
func Initialize(config utils.LifeConfig, mode InitMode, rng RandomSource) (*Life, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Initialize] failed to validate config")
	}

	var (
		width  = config.Board.Columns()
		height = config.Board.Rows()
		grid   = NewGrid(width, height)
	)

	switch mode {
	case InitRandom:
		if rng == nil {
			return nil, errors.Wrap(utils.ErrInvalidConfig, "[Initialize] random init requires a random source")
		}
		// Column-major draw order so a fixed source yields a fixed board
		for i := range width {
			for j := range height {
				grid.Set(i, j, rng.IntN(2) == 1)
			}
		}
	case InitSeeded:
		for coord := range config.SeedSet() {
			if coord[0] < 0 || coord[0] >= width || coord[1] < 0 || coord[1] >= height {
				utils.Logf("[Initialize] ignoring seed %v outside %dx%d board", coord, width, height)
				continue
			}
			grid.Set(coord[0], coord[1], true)
		}
	default:
		return nil, errors.Wrapf(utils.ErrInvalidConfig, "[Initialize] unknown init mode %d", mode)
	}

	var pool *SnapshotPool
	if config.UseMemoryPool {
		pool = NewSnapshotPool()
	}

	utils.Logf("[Initialize] %dx%d board, %s init, %d alive", width, height, mode, grid.CountLivingCells())

	return &Life{
		grid:      grid,
		scheduler: NewScheduler(config.TickInterval),
		pool:      pool,
		workers:   config.Workers,
	}, nil
}

// Tick feeds dt seconds of wall-clock time to the scheduler and advances at
// most one generation. advanced reports whether a generation was computed.
func (l *Life) Tick(dt float64) (advanced bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.scheduler.Tick(dt) {
		return false, nil
	}
	if err = l.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// Step advances exactly one generation, bypassing the scheduler
func (l *Life) Step() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.advance()
}

// advance runs snapshot then rule pass. Callers hold the write lock.
func (l *Life) advance() error {
	snap := l.grid.Snapshot(l.pool)
	defer SnapshotToPool(snap, l.pool)

	if err := l.grid.Advance(snap, l.workers); err != nil {
		return errors.Wrapf(err, "[advance] generation %d", l.generation+1)
	}

	l.generation++
	return nil
}

// View returns a copy of the last completed generation
func (l *Life) View() []Cell {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.Cells()
}

// Alive reports whether the cell at (column, row) is alive
func (l *Life) Alive(column, row int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.Get(column, row)
}

// Generation returns the number of generations advanced since initialization
func (l *Life) Generation() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.generation
}

// Population returns the number of living cells
func (l *Life) Population() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.CountLivingCells()
}

// Hash returns a digest of the current generation
func (l *Life) Hash() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.GetGridHash()
}

// Size returns the board dimensions in cells
func (l *Life) Size() (width, height int) {
	return l.grid.GetWidth(), l.grid.GetHeight()
}
