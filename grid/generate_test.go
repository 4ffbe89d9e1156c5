package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

func countObstacles(g *grid.Grid) int {
	n := 0
	for _, row := range g.Occupancy() {
		for _, free := range row {
			if !free {
				n++
			}
		}
	}

	return n
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		frac       float64
		err        error
	}{
		{"ZeroRows", 0, 5, 0.2, grid.ErrDimensions},
		{"TooManyRows", 101, 5, 0.2, grid.ErrDimensions},
		{"NegativeCols", 5, -1, 0.2, grid.ErrDimensions},
		{"FractionTooLow", 5, 5, 0.01, grid.ErrObstacleFraction},
		{"FractionTooHigh", 5, 5, 0.9, grid.ErrObstacleFraction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := open(t, "...")
			err := g.Generate(tc.rows, tc.cols, tc.frac, grid.NewRand(1))
			require.ErrorIs(t, err, tc.err)
			assert.True(t, g.Empty())
		})
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, b := grid.New(), grid.New()
	require.NoError(t, a.Generate(20, 30, 0.3, grid.NewRand(42)))
	require.NoError(t, b.Generate(20, 30, 0.3, grid.NewRand(42)))
	assert.Equal(t, a.Occupancy(), b.Occupancy())

	// seed 0 and a nil source share the default stream
	c, d := grid.New(), grid.New()
	require.NoError(t, c.Generate(10, 10, 0, grid.NewRand(0)))
	require.NoError(t, d.Generate(10, 10, 0, nil))
	assert.Equal(t, c.Occupancy(), d.Occupancy())
}

func TestGenerate_Fraction(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Generate(100, 100, 0.3, grid.NewRand(3)))
	assert.Equal(t, 100, g.Rows())
	assert.Equal(t, 100, g.Cols())
	n := countObstacles(g)
	assert.InDelta(t, 3000, n, 400, "obstacle count %d far from 30%%", n)
	assert.False(t, g.EndpointsSet())
}

// TestGenerate_DrawnFraction relies on a narrow limit window so the drawn
// fraction is pinned near a known value.
func TestGenerate_DrawnFraction(t *testing.T) {
	lim := grid.DefaultLimits()
	lim.MinObstacle, lim.MaxObstacle = 0.40, 0.45
	g := grid.New(grid.WithLimits(lim))
	for seed := int64(1); seed <= 5; seed++ {
		require.NoError(t, g.Generate(100, 100, -1, grid.NewRand(seed)))
		n := countObstacles(g)
		assert.GreaterOrEqual(t, n, 3500)
		assert.LessOrEqual(t, n, 5000)
	}
}
