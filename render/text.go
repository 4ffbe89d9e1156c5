package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Layout of the console rendering, in character cells.
const (
	rowLabelWidth = 4 // "00 |"
	cellWidth     = 3 // "Or|"
	headerLines   = 2 // column indices + first separator
)

// emptyBanner is printed instead of a map when the grid has no cells.
var emptyBanner = []string{
	"+------------+",
	"| EMPTY MAP  |",
	"+------------+",
}

// Text writes the console rendering of g to w:
//
//	    00 01 02
//	   +--+--+--+
//	00 |Or|##|  |
//	   +--+--+--+
//
// Each cell shows its two-character grid.CellState code. An empty grid
// prints a three-line EMPTY MAP banner instead.
func Text(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	var sb strings.Builder
	for _, line := range lines(g) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// lines builds the rendering line by line, without terminators.
func lines(g *grid.Grid) []string {
	if g.Empty() {
		return emptyBanner
	}

	out := make([]string, 0, headerLines+2*g.Rows())

	// 1) Column indices
	var sb strings.Builder
	sb.WriteString("    ")
	for c := 0; c < g.Cols(); c++ {
		fmt.Fprintf(&sb, "%02d ", c)
	}
	out = append(out, sb.String())

	// 2) Separator shared by every row
	sep := "   +" + strings.Repeat("--+", g.Cols())
	out = append(out, sep)

	// 3) Rows, each followed by a separator
	for r := 0; r < g.Rows(); r++ {
		sb.Reset()
		fmt.Fprintf(&sb, "%02d |", r)
		for c := 0; c < g.Cols(); c++ {
			sb.WriteString(g.At(grid.C(r, c)).String())
			sb.WriteByte('|')
		}
		out = append(out, sb.String(), sep)
	}

	return out
}

// CellOrigin returns the screen position of the first character of c's
// code in the Text layout.
func CellOrigin(c grid.Coord) (x, y int) {
	return rowLabelWidth + cellWidth*c.Col, headerLines + 2*c.Row
}

// CellAt maps a screen position back to the grid cell whose code covers it.
func CellAt(g *grid.Grid, x, y int) (grid.Coord, bool) {
	if g == nil || g.Empty() || x < rowLabelWidth || y < headerLines {
		return grid.Coord{}, false
	}
	dy := y - headerLines
	dx := x - rowLabelWidth
	if dy%2 != 0 || dx%cellWidth == cellWidth-1 {
		return grid.Coord{}, false
	}
	c := grid.C(dy/2, dx/cellWidth)
	if !g.InBounds(c) {
		return grid.Coord{}, false
	}

	return c, true
}
