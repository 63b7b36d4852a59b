package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalRendererDisplay(t *testing.T) {
	t.Parallel()

	g := NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(g.Cells(), 3, 2)

	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosBlock + "\n"
	assert.Equal(t, want, buf.String())
}
