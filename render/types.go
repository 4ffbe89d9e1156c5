package render

import (
	"errors"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/grid"
)

var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a renderer.
	ErrNilGrid = errors.New("render: nil grid")

	// ErrEmptyGrid indicates a raster render was requested for an empty grid.
	ErrEmptyGrid = errors.New("render: empty grid")

	// ErrCellSize indicates a PNG cell size outside [MinCell, MaxCell].
	ErrCellSize = errors.New("render: cell size out of range")
)

// Pixel bounds for one PNG cell.
const (
	MinCell = 1
	MaxCell = 64
)

// Canvas is the drawing surface Screen needs. tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Theme maps cell states to terminal styles and raster colours.
//
// Frame styles the header, row labels and separators.
// Cursor is applied by the viewer on top of the cell under the cursor.
type Theme struct {
	Frame  tcell.Style
	Cursor tcell.Style
	Cells  map[grid.CellState]tcell.Style
	Colors map[grid.CellState]color.Color
}

// DefaultTheme returns the palette used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Frame:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		Cursor: tcell.StyleDefault.Reverse(true),
		Cells: map[grid.CellState]tcell.Style{
			grid.Free:        tcell.StyleDefault,
			grid.Obstacle:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
			grid.Origin:      tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
			grid.Destination: tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
			grid.Path:        tcell.StyleDefault.Foreground(tcell.ColorYellow),
		},
		Colors: map[grid.CellState]color.Color{
			grid.Free:        color.White,
			grid.Obstacle:    color.RGBA{40, 40, 40, 255},
			grid.Origin:      color.RGBA{0, 200, 0, 255},
			grid.Destination: color.RGBA{0, 0, 255, 255},
			grid.Path:        color.RGBA{255, 200, 0, 255},
		},
	}
}

// style returns the terminal style for s, or StyleDefault if the theme has none.
func (t Theme) style(s grid.CellState) tcell.Style {
	if st, ok := t.Cells[s]; ok {
		return st
	}

	return tcell.StyleDefault
}

// color returns the raster colour for s; unknown states are magenta.
func (t Theme) color(s grid.CellState) color.Color {
	if c, ok := t.Colors[s]; ok {
		return c
	}

	return color.RGBA{255, 0, 255, 255}
}
