package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

var _ render.Canvas = tcell.Screen(nil)

type cell struct {
	r  rune
	st tcell.Style
}

// recorder is a Canvas that keeps the last write per position.
type recorder map[[2]int]cell

func (rc recorder) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	rc[[2]int{x, y}] = cell{r, st}
}

// row reads back n runes of line y starting at x.
func (rc recorder) row(y, n int) string {
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		out = append(out, rc[[2]int{x, y}].r)
	}

	return string(out)
}

func TestScreen_MatchesText(t *testing.T) {
	g := sample(t)
	rc := recorder{}
	require.NoError(t, render.Screen(rc, g, render.DefaultTheme()))

	assert.Equal(t, "    00 01 02 ", rc.row(0, 13))
	assert.Equal(t, "   +--+--+--+", rc.row(1, 13))
	assert.Equal(t, "00 |Or|##|..|", rc.row(2, 13))
	assert.Equal(t, "01 |  |..|De|", rc.row(4, 13))
}

func TestScreen_Styles(t *testing.T) {
	g := sample(t)
	theme := render.DefaultTheme()
	rc := recorder{}
	require.NoError(t, render.Screen(rc, g, theme))

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			x, y := render.CellOrigin(grid.C(r, c))
			want := theme.Cells[g.At(grid.C(r, c))]
			assert.Equal(t, want, rc[[2]int{x, y}].st, "cell %d,%d", r, c)
			assert.Equal(t, want, rc[[2]int{x + 1, y}].st, "cell %d,%d", r, c)
		}
	}
	assert.Equal(t, theme.Frame, rc[[2]int{3, 2}].st)
	assert.Equal(t, theme.Frame, rc[[2]int{0, 0}].st)
}

func TestScreen_EmptyAndNil(t *testing.T) {
	rc := recorder{}
	require.NoError(t, render.Screen(rc, grid.New(), render.DefaultTheme()))
	assert.Equal(t, "| EMPTY MAP  |", rc.row(1, 14))

	assert.ErrorIs(t, render.Screen(rc, nil, render.DefaultTheme()), render.ErrNilGrid)
	assert.ErrorIs(t, render.Screen(nil, grid.New(), render.DefaultTheme()), render.ErrNilGrid)
}

func TestCursor(t *testing.T) {
	g := sample(t)
	theme := render.DefaultTheme()
	rc := recorder{}
	require.NoError(t, render.Screen(rc, g, theme))

	render.Cursor(rc, g, grid.C(0, 1), theme)
	x, y := render.CellOrigin(grid.C(0, 1))
	assert.Equal(t, cell{'#', theme.Cursor}, rc[[2]int{x, y}])

	n := len(rc)
	render.Cursor(rc, g, grid.C(5, 5), theme)
	assert.Len(t, rc, n)
}
