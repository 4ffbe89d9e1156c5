package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

// rgba flattens any colour to comparable 8-bit RGBA.
func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()

	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestPNG_Pixels(t *testing.T) {
	const cell = 10
	g := sample(t)
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, g, cell))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3*cell, 2*cell), img.Bounds())

	theme := render.DefaultTheme()
	centre := func(c grid.Coord) color.RGBA {
		return rgba(img.At(c.Col*cell+cell/2, c.Row*cell+cell/2))
	}
	assert.Equal(t, rgba(theme.Colors[grid.Origin]), centre(grid.C(0, 0)))
	assert.Equal(t, rgba(theme.Colors[grid.Obstacle]), centre(grid.C(0, 1)))
	assert.Equal(t, rgba(theme.Colors[grid.Path]), centre(grid.C(0, 2)))
	assert.Equal(t, rgba(theme.Colors[grid.Free]), centre(grid.C(1, 0)))
	assert.Equal(t, rgba(theme.Colors[grid.Destination]), centre(grid.C(1, 2)))

	// disc corners keep the background
	assert.Equal(t, rgba(theme.Colors[grid.Free]), rgba(img.At(0, 0)))
}

func TestPNG_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.PNG(&buf, nil, 8), render.ErrNilGrid)
	assert.ErrorIs(t, render.PNG(&buf, grid.New(), 8), render.ErrEmptyGrid)
	assert.ErrorIs(t, render.PNG(&buf, sample(t), 0), render.ErrCellSize)
	assert.ErrorIs(t, render.PNG(&buf, sample(t), render.MaxCell+1), render.ErrCellSize)
	assert.Zero(t, buf.Len())
}
