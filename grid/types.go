// Package grid defines the coordinate, cell-state and limit types together
// with the sentinel errors returned by Grid operations.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates an operation that needs cells was called on an empty grid.
	ErrEmptyGrid = errors.New("grid: grid is empty")

	// ErrBadHeader indicates the persisted header tag is missing or wrong.
	ErrBadHeader = errors.New("grid: missing or invalid LABIRINTO header")

	// ErrDimensions indicates rows or columns outside the configured Limits.
	ErrDimensions = errors.New("grid: dimensions out of bounds")

	// ErrObstacleFraction indicates an obstacle fraction outside the configured Limits.
	ErrObstacleFraction = errors.New("grid: obstacle fraction out of bounds")

	// ErrMalformed indicates the occupancy matrix is short or holds a non-integer token.
	ErrMalformed = errors.New("grid: malformed occupancy matrix")

	// ErrOpen indicates the backing file could not be opened or created.
	ErrOpen = errors.New("grid: cannot open file")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrNotPassable indicates an endpoint was placed on an obstacle or outside the grid.
	ErrNotPassable = errors.New("grid: cell is not passable")

	// ErrEndpointCell indicates a direct write that would corrupt the origin or destination marker.
	ErrEndpointCell = errors.New("grid: origin and destination cells are managed by SetOrigin/SetDestination")

	// ErrBadCoord indicates a coordinate string that could not be parsed.
	ErrBadCoord = errors.New("grid: invalid coordinate")
)

// CellState is the mutually exclusive state of a single grid cell.
type CellState uint8

const (
	// Free is an empty, traversable cell.
	Free CellState = iota
	// Obstacle is a blocked cell.
	Obstacle
	// Origin marks the search origin. Traversable.
	Origin
	// Destination marks the search destination. Traversable.
	Destination
	// Path marks an intermediate cell of the last path found.
	Path
)

// String returns the two-character console code for the state.
func (s CellState) String() string {
	switch s {
	case Free:
		return "  "
	case Obstacle:
		return "##"
	case Origin:
		return "Or"
	case Destination:
		return "De"
	case Path:
		return ".."
	default:
		return "??"
	}
}

// Coord is an immutable (row, col) position. The zero value is the
// top-left cell; it carries no "unset" meaning.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// Valid reports whether both components are non-negative.
// The upper bound depends on the grid and is checked by Grid.InBounds.
func (c Coord) Valid() bool { return c.Row >= 0 && c.Col >= 0 }

// Add returns the component-wise sum c+d.
func (c Coord) Add(d Coord) Coord { return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col} }

// IsDiagonal reports whether c, read as a direction vector, moves along both axes.
func (c Coord) IsDiagonal() bool { return c.Row != 0 && c.Col != 0 }

// String renders the coordinate as "row;col".
func (c Coord) String() string { return fmt.Sprintf("%d;%d", c.Row, c.Col) }

// ParseCoord parses "row,col" or "row;col" (surrounding spaces allowed).
func ParseCoord(s string) (Coord, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}

	return Coord{Row: row, Col: col}, nil
}

// Limits bounds the accepted grid dimensions and obstacle fractions.
//
//	MinRows..MaxRows       accepted row count (inclusive)
//	MinCols..MaxCols       accepted column count (inclusive)
//	MinObstacle..MaxObstacle accepted obstacle fraction for Generate (inclusive)
type Limits struct {
	MinRows, MaxRows         int
	MinCols, MaxCols         int
	MinObstacle, MaxObstacle float64
}

// DefaultLimits returns rows and columns in [1,100] and obstacle
// fractions in [0.05,0.50].
func DefaultLimits() Limits {
	return Limits{
		MinRows:     1,
		MaxRows:     100,
		MinCols:     1,
		MaxCols:     100,
		MinObstacle: 0.05,
		MaxObstacle: 0.50,
	}
}

// dimsOK reports whether rows×cols lies inside the limits.
func (l Limits) dimsOK(rows, cols int) bool {
	return rows >= l.MinRows && rows <= l.MaxRows && cols >= l.MinCols && cols <= l.MaxCols
}

// fractionOK reports whether f lies inside [MinObstacle, MaxObstacle].
func (l Limits) fractionOK(f float64) bool {
	return f >= l.MinObstacle && f <= l.MaxObstacle
}

// Options configures a Grid.
type Options struct {
	Limits Limits
}

// Option is a functional option for New.
type Option func(*Options)

// WithLimits replaces the default Limits.
func WithLimits(l Limits) Option {
	return func(o *Options) {
		o.Limits = l
	}
}

// DefaultOptions returns Options holding DefaultLimits.
func DefaultOptions() Options {
	return Options{Limits: DefaultLimits()}
}
