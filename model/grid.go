package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Cell is one board position. Column and Row are fixed when the grid is built.
type Cell struct {
	Column int
	Row    int
	Alive  bool
}

// Grid is the authoritative store of cell state, kept in row-major order
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([]Cell, width*height)
	for y := range height {
		for x := range width {
			cells[y*width+x] = Cell{Column: x, Row: y}
		}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Len returns the number of cells on the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// Set sets a cell to alive (true) or dead (false). Off-board coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y*g.width+x].Alive = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x].Alive
}

// Cells returns a copy of every cell in row-major order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Snapshot captures the alive state of every cell. A nil pool allocates a
// fresh snapshot.
func (g *Grid) Snapshot(pool *SnapshotPool) *Snapshot {
	var snap *Snapshot
	if pool != nil {
		snap = pool.Get(g.width, g.height)
	} else {
		snap = &Snapshot{}
		snap.reset(g.width, g.height)
	}

	for i := range g.cells {
		snap.alive[i] = g.cells[i].Alive
	}
	return snap
}

// Advance writes the next generation into the grid, reading neighbor state
// only from snap. Rows are split into bands evaluated in parallel; each band
// writes only its own cells. workers <= 0 uses runtime.NumCPU(); more workers
// than rows are capped at one per row.
func (g *Grid) Advance(snap *Snapshot, workers int) error {
	if snap == nil {
		return errors.Wrap(utils.ErrInternalInconsistency, "[Advance] nil snapshot")
	}
	if snap.width != g.width || snap.height != g.height || snap.Len() != len(g.cells) {
		return errors.Wrapf(utils.ErrInternalInconsistency,
			"[Advance] snapshot %dx%d (%d cells) does not match grid %dx%d (%d cells)",
			snap.width, snap.height, snap.Len(), g.width, g.height, len(g.cells))
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, g.height)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					cell := &g.cells[y*g.width+x]
					cell.Alive = rules.NextState(snap.CountNeighbors(x, y), snap.Alive(x, y))
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].Alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for i := range g.cells {
		if g.cells[i].Alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a vertical blinker with its top cell at the given position
func (g *Grid) AddOscillator(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX, startY+1, true)
	g.Set(startX, startY+2, true)
}

// AddBlock adds a 2x2 still life with its top-left cell at the given position
func (g *Grid) AddBlock(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX, startY+1, true)
	g.Set(startX+1, startY+1, true)
}
