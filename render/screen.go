package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/grid"
)

// Screen draws the Text layout of g onto s, styling frame characters with
// theme.Frame and each cell code with its state's style. The caller owns
// s and is responsible for Clear and Show.
func Screen(s Canvas, g *grid.Grid, theme Theme) error {
	if s == nil || g == nil {
		return ErrNilGrid
	}

	// 1) Frame: every character of the text layout
	for y, line := range lines(g) {
		x := 0
		for _, r := range line {
			s.SetContent(x, y, r, nil, theme.Frame)
			x++
		}
	}
	if g.Empty() {
		return nil
	}

	// 2) Cells: repaint the codes with per-state styles
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := grid.C(r, c)
			drawCell(s, at, g.At(at).String(), theme.style(g.At(at)))
		}
	}

	return nil
}

// Cursor repaints the code of the cell at c with theme.Cursor.
func Cursor(s Canvas, g *grid.Grid, c grid.Coord, theme Theme) {
	if s == nil || g == nil || !g.InBounds(c) {
		return
	}
	drawCell(s, c, g.At(c).String(), theme.Cursor)
}

func drawCell(s Canvas, c grid.Coord, code string, st tcell.Style) {
	x, y := CellOrigin(c)
	for i, r := range []rune(code) {
		s.SetContent(x+i, y, r, nil, st)
	}
}
