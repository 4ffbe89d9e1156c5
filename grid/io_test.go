package grid_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

func TestLoad_Valid(t *testing.T) {
	src := "LABIRINTO 2 3\n1 0 1\n7 1 0\n"
	g := grid.New()
	require.NoError(t, g.Load(strings.NewReader(src)))

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, [][]bool{{true, false, true}, {true, true, false}}, g.Occupancy())
	assert.False(t, g.EndpointsSet())
}

// TestLoad_Errors checks every failure leaves the grid empty, even when it
// held a map before.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", grid.ErrBadHeader},
		{"WrongTag", "MAZE 2 2\n1 1\n1 1\n", grid.ErrBadHeader},
		{"NonNumericSize", "LABIRINTO x 2\n", grid.ErrBadHeader},
		{"ZeroRows", "LABIRINTO 0 2\n", grid.ErrDimensions},
		{"TooManyCols", "LABIRINTO 2 101\n", grid.ErrDimensions},
		{"ShortMatrix", "LABIRINTO 2 2\n1 1\n1\n", grid.ErrMalformed},
		{"BadToken", "LABIRINTO 1 2\n1 z\n", grid.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := open(t, "..", "..")
			err := g.Load(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.err)
			assert.True(t, g.Empty())
			assert.False(t, g.EndpointsSet())
		})
	}
}

func TestSave_Format(t *testing.T) {
	g := open(t, ".#.", "#..")
	require.NoError(t, g.SetOrigin(grid.C(0, 0)))
	require.NoError(t, g.SetDestination(grid.C(1, 2)))
	require.NoError(t, g.Set(grid.C(1, 1), grid.Path))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf))
	assert.Equal(t, "LABIRINTO 2 3\n1 0 1 \n0 1 1 \n", buf.String())
}

func TestSave_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, grid.New().Save(&buf), grid.ErrEmptyGrid)
	assert.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "none.txt")
	require.ErrorIs(t, grid.New().SaveFile(path), grid.ErrEmptyGrid)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// TestSaveLoad_RoundTrip saves generated grids and reloads them; the
// occupancy matrix and dimensions must match exactly.
func TestSaveLoad_RoundTrip(t *testing.T) {
	rng := grid.NewRand(7)
	for i := 0; i < 20; i++ {
		src := grid.New()
		rows, cols := 1+rng.Intn(30), 1+rng.Intn(30)
		require.NoError(t, src.Generate(rows, cols, 0, rng))

		var buf bytes.Buffer
		require.NoError(t, src.Save(&buf))

		dst := grid.New()
		require.NoError(t, dst.Load(&buf))
		require.Equal(t, src.Rows(), dst.Rows())
		require.Equal(t, src.Cols(), dst.Cols())
		require.Equal(t, src.Occupancy(), dst.Occupancy())
	}
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	src := open(t, "..#", "#..", "...")
	require.NoError(t, src.SaveFile(path))

	dst := grid.New()
	require.NoError(t, dst.LoadFile(path))
	assert.Equal(t, src.Occupancy(), dst.Occupancy())

	err := dst.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, grid.ErrOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.True(t, dst.Empty())
}
