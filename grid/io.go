package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// HeaderTag is the first token of the persisted grid format.
const HeaderTag = "LABIRINTO"

// Load replaces the grid with one read from r in the persisted format:
//
//	LABIRINTO <rows> <cols>
//	v v v ...   (rows lines of cols whitespace-separated integers)
//
// A value of 0 is an Obstacle, any other integer is Free. Origin and
// destination are unset afterwards.
//
// Errors (the grid is left empty on any of them):
//   - ErrBadHeader  if the tag is missing or not HeaderTag, or the sizes are not integers.
//   - ErrDimensions if rows or cols fall outside the Limits.
//   - ErrMalformed  if the matrix is short or holds a non-integer token.
//
// Complexity: O(rows×cols).
func (g *Grid) Load(r io.Reader) error {
	g.Clear()

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// 1) Header: tag, rows, cols.
	var head [3]string
	for i := range head {
		if !sc.Scan() {
			return fmt.Errorf("%w: truncated header", ErrBadHeader)
		}
		head[i] = sc.Text()
	}
	if head[0] != HeaderTag {
		return fmt.Errorf("%w: got tag %q", ErrBadHeader, head[0])
	}
	rows, errR := strconv.Atoi(head[1])
	cols, errC := strconv.Atoi(head[2])
	if errR != nil || errC != nil {
		return fmt.Errorf("%w: sizes %q %q", ErrBadHeader, head[1], head[2])
	}
	if !g.limits.dimsOK(rows, cols) {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}

	// 2) Occupancy matrix, row-major.
	g.resize(rows, cols)
	for i := range g.cells {
		if !sc.Scan() {
			g.Clear()
			return fmt.Errorf("%w: expected %d values, got %d", ErrMalformed, rows*cols, i)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			g.Clear()
			return fmt.Errorf("%w: token %q at %v", ErrMalformed, sc.Text(), g.Coordinate(i))
		}
		if v == 0 {
			g.cells[i] = Obstacle
		}
	}
	if err := sc.Err(); err != nil {
		g.Clear()
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return nil
}

// LoadFile opens path and calls Load. The grid is left empty on failure.
func (g *Grid) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		g.Clear()
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return g.Load(f)
}

// Save writes the grid to w in the format read by Load. Obstacles are
// written as 0 and every other state as 1, so origin, destination and
// path markings are not persisted.
// Returns ErrEmptyGrid if the grid has no cells.
func (g *Grid) Save(w io.Writer) error {
	if g.Empty() {
		return ErrEmptyGrid
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d %d\n", HeaderTag, g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			v := '1'
			if g.cells[r*g.cols+c] == Obstacle {
				v = '0'
			}
			bw.WriteRune(v)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// SaveFile creates (or truncates) path and calls Save.
// An empty grid fails with ErrEmptyGrid before the file is touched.
func (g *Grid) SaveFile(path string) error {
	if g.Empty() {
		return ErrEmptyGrid
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if err = g.Save(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
