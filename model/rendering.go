package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders a view of the board, one row per line
func (r *TerminalRenderer) Display(cells []Cell, width, height int) {
	rows := make([][]bool, height)
	for i := range rows {
		rows[i] = make([]bool, width)
	}
	for _, c := range cells {
		if c.Row >= 0 && c.Row < height && c.Column >= 0 && c.Column < width {
			rows[c.Row][c.Column] = rules.Tint(c.Alive) == rules.AliveTint
		}
	}

	w := r.out()
	for _, row := range rows {
		for _, filled := range row {
			if filled {
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
