// Package grid models a bounded 2-D map of free and blocked cells together
// with the origin and destination of a path search.
//
// What:
//
//   - Coord is a (Row, Col) position; CellState is one of Free, Obstacle,
//     Origin, Destination or Path.
//   - Grid owns a dense rows×cols slice of CellState and the two endpoints.
//   - Origin and Destination cells stay passable; only Obstacle blocks.
//   - Moves/CanMove implement the 8-directional move rule with the
//     corner-cutting restriction shared by the astar package and Regions.
//
// Lifecycle:
//
//   - New returns an empty grid. Load, FromOccupancy and Generate fill it.
//   - SetOrigin/SetDestination place the endpoints and clear stale Path cells.
//   - A search (astar.FindPath) writes Path cells; ClearPath removes them.
//   - Clear empties the grid again.
//
// Persisted format:
//
//	LABIRINTO <rows> <cols>
//	1 1 0 1
//	...
//
// where 0 is an obstacle and any other integer is free. Endpoints and path
// markings are not persisted.
//
// Limits:
//
//   - DefaultLimits: rows and cols in [1,100], obstacle fraction in [0.05,0.50].
//   - WithLimits overrides them per grid.
//
// Errors:
//
//   - ErrEmptyGrid, ErrBadHeader, ErrDimensions, ErrObstacleFraction,
//     ErrMalformed, ErrOpen: configuration errors from Load/Save/Generate.
//     The grid is left empty whenever Load or Generate fails.
//   - ErrOutOfBounds, ErrNotPassable, ErrEndpointCell: rejected cell writes.
//   - ErrBadCoord: ParseCoord input.
//
// Randomness:
//
//   - Generate takes an explicit *rand.Rand; NewRand(seed) builds one, with
//     seed 0 mapped to a fixed default so runs are reproducible.
package grid
