// Cells are kept in a dense row-major slice. Origin and Destination are
// tracked both as cell states (for rendering) and as explicit coordinates
// with a "set" flag, so no coordinate value doubles as "unset".

package grid

import "fmt"

// endpoint is a coordinate that may be unset.
type endpoint struct {
	at  Coord
	set bool
}

// Grid is a rows×cols map of CellState plus an optional origin and destination.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	rows, cols  int
	cells       []CellState
	origin      endpoint
	destination endpoint
	limits      Limits
}

// New returns an empty grid configured by opts.
func New(opts ...Option) *Grid {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid{limits: cfg.Limits}
}

// Limits returns the configured dimension and obstacle limits.
func (g *Grid) Limits() Limits { return g.limits }

// Clear resets the grid to zero size with origin and destination unset.
func (g *Grid) Clear() {
	g.rows, g.cols = 0, 0
	g.cells = nil
	g.origin = endpoint{}
	g.destination = endpoint{}
}

// resize clears the grid and allocates rows×cols Free cells.
func (g *Grid) resize(rows, cols int) {
	g.Clear()
	g.rows, g.cols = rows, cols
	g.cells = make([]CellState, rows*cols)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// index maps c to its row-major offset. c must be in bounds.
func (g *Grid) index(c Coord) int { return c.Row*g.cols + c.Col }

// Coordinate converts a row-major offset back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// InBounds reports whether c addresses a cell of the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Valid() && c.Row < g.rows && c.Col < g.cols
}

// IsPassable reports whether c is in bounds and not an Obstacle.
// Origin, Destination and Path cells are passable.
// Complexity: O(1).
func (g *Grid) IsPassable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Obstacle
}

// At returns the state of cell c, or Obstacle when c is out of bounds.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		return Obstacle
	}

	return g.cells[g.index(c)]
}

// Set writes a single cell. Only Free, Obstacle and Path may be written, and
// the current origin and destination cells cannot be overwritten; use
// SetOrigin and SetDestination to move them.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if s == Origin || s == Destination {
		return fmt.Errorf("%w: cannot write %v directly", ErrEndpointCell, c)
	}
	cur := g.cells[g.index(c)]
	if cur == Origin || cur == Destination {
		return fmt.Errorf("%w: %v", ErrEndpointCell, c)
	}
	g.cells[g.index(c)] = s

	return nil
}

// Origin returns the origin and whether it is set.
func (g *Grid) Origin() (Coord, bool) { return g.origin.at, g.origin.set }

// Destination returns the destination and whether it is set.
func (g *Grid) Destination() (Coord, bool) { return g.destination.at, g.destination.set }

// EndpointsSet reports whether both origin and destination are set.
func (g *Grid) EndpointsSet() bool { return g.origin.set && g.destination.set }

// SetOrigin moves the origin marker to c.
// It fails with ErrNotPassable if c is out of bounds or an obstacle.
// Setting the current origin again is a no-op. Otherwise any Path markings
// are cleared, the previous origin cell reverts to Free and c is marked Origin.
func (g *Grid) SetOrigin(c Coord) error {
	return g.setEndpoint(&g.origin, c, Origin)
}

// SetDestination moves the destination marker to c, with the same rules as SetOrigin.
func (g *Grid) SetDestination(c Coord) error {
	return g.setEndpoint(&g.destination, c, Destination)
}

func (g *Grid) setEndpoint(ep *endpoint, c Coord, mark CellState) error {
	if !g.IsPassable(c) {
		return fmt.Errorf("%w: %v", ErrNotPassable, c)
	}
	if ep.set && ep.at == c {
		return nil
	}

	g.ClearPath()

	// The previous marker only reverts if it still carries this endpoint's
	// state; origin and destination may have been stacked on one cell.
	if ep.set && g.cells[g.index(ep.at)] == mark {
		g.cells[g.index(ep.at)] = Free
	}
	ep.at, ep.set = c, true
	g.cells[g.index(c)] = mark

	// Restore the other marker if c previously held it and it now moved away.
	g.remark()

	return nil
}

// remark re-applies endpoint markers whose cell lost its state, which only
// happens while origin and destination share a cell and one of them moves.
func (g *Grid) remark() {
	if g.origin.set && g.cells[g.index(g.origin.at)] == Free {
		g.cells[g.index(g.origin.at)] = Origin
	}
	if g.destination.set && g.cells[g.index(g.destination.at)] == Free {
		g.cells[g.index(g.destination.at)] = Destination
	}
}

// ClearPath resets every Path cell to Free. Idempotent.
// Complexity: O(rows×cols).
func (g *Grid) ClearPath() {
	for i, s := range g.cells {
		if s == Path {
			g.cells[i] = Free
		}
	}
}

// PathCells returns the coordinates of all Path cells in row-major order.
func (g *Grid) PathCells() []Coord {
	var out []Coord
	for i, s := range g.cells {
		if s == Path {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Occupancy returns a fresh rows×cols matrix where true means passable.
func (g *Grid) Occupancy() [][]bool {
	out := make([][]bool, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]bool, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = g.cells[r*g.cols+c] != Obstacle
		}
	}

	return out
}

// FromOccupancy replaces the grid with the given rectangular matrix,
// true meaning passable. Dimensions are validated against the Limits;
// on failure the grid is left empty.
func (g *Grid) FromOccupancy(m [][]bool) error {
	g.Clear()
	if len(m) == 0 {
		return fmt.Errorf("%w: 0 rows", ErrDimensions)
	}
	rows, cols := len(m), len(m[0])
	if !g.limits.dimsOK(rows, cols) {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	for _, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%w: ragged rows", ErrMalformed)
		}
	}

	g.resize(rows, cols)
	for r, row := range m {
		for c, free := range row {
			if !free {
				g.cells[r*cols+c] = Obstacle
			}
		}
	}

	return nil
}
