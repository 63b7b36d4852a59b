package model

// Snapshot is a read-only view of one generation's alive/dead state. It is
// taken before any cell of the next generation is written and is the only
// input to neighbor counting.
type Snapshot struct {
	width  int
	height int
	alive  []bool
}

// Len returns the number of cells covered by the snapshot
func (s *Snapshot) Len() int {
	return len(s.alive)
}

// Alive reports whether the cell at (column, row) was alive. Coordinates off
// the board are dead.
func (s *Snapshot) Alive(column, row int) bool {
	if column < 0 || column >= s.width || row < 0 || row >= s.height {
		return false
	}
	return s.alive[row*s.width+column]
}

// CountNeighbors counts the alive Moore neighbors of (column, row). There is
// no wraparound: the 3..5 off-board positions of an edge cell count as dead.
func (s *Snapshot) CountNeighbors(column, row int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.Alive(column+dx, row+dy) {
				count++
			}
		}
	}
	return count
}

// reset resizes the snapshot buffer, reusing its backing array when possible
func (s *Snapshot) reset(width, height int) {
	s.width = width
	s.height = height
	if cap(s.alive) < width*height {
		s.alive = make([]bool, width*height)
		return
	}
	s.alive = s.alive[:width*height]
}
