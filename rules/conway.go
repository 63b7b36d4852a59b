package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func NextState(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Color is an RGBA display color with components in [0, 1]
type Color struct {
	R, G, B, A float32
}

var (
	// AliveTint is black
	AliveTint = Color{R: 0, G: 0, B: 0, A: 1}
	// DeadTint is white
	DeadTint = Color{R: 1, G: 1, B: 1, A: 1}
)

// Tint returns the display color for a cell state. It is derived from alive
// alone and never stored alongside the cell.
func Tint(alive bool) Color {
	if alive {
		return AliveTint
	}
	return DeadTint
}
