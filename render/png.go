package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/labyrinth/grid"
)

// PNG encodes g as a PNG image to w, one cell×cell square per grid cell,
// coloured with DefaultTheme. Origin and Destination are drawn as discs on
// a Free background.
func PNG(w io.Writer, g *grid.Grid, cell int) error {
	return PNGTheme(w, g, cell, DefaultTheme())
}

// PNGTheme is PNG with an explicit palette.
func PNGTheme(w io.Writer, g *grid.Grid, cell int, theme Theme) error {
	// 1) Validate
	if g == nil {
		return ErrNilGrid
	}
	if g.Empty() {
		return ErrEmptyGrid
	}
	if cell < MinCell || cell > MaxCell {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCellSize, cell, MinCell, MaxCell)
	}

	// 2) Background and squares
	dc := gg.NewContext(g.Cols()*cell, g.Rows()*cell)
	dc.SetColor(theme.color(grid.Free))
	dc.Clear()

	size := float64(cell)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			s := g.At(grid.C(r, c))
			if s == grid.Free || s == grid.Origin || s == grid.Destination {
				continue
			}
			dc.SetColor(theme.color(s))
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Fill()
		}
	}

	// 3) Endpoints on top
	for _, ep := range []struct {
		state grid.CellState
		get   func() (grid.Coord, bool)
	}{
		{grid.Origin, g.Origin},
		{grid.Destination, g.Destination},
	} {
		at, ok := ep.get()
		if !ok {
			continue
		}
		dc.SetColor(theme.color(ep.state))
		dc.DrawCircle(float64(at.Col)*size+size/2, float64(at.Row)*size+size/2, size/2)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
