// Package astar finds single-source, single-destination shortest paths on a
// grid.Grid with the A* best-first search.
//
// Overview:
//
//   - Movement is 8-directional. Orthogonal steps cost 1, diagonal steps √2.
//   - A diagonal step is only legal when both orthogonal cells it passes
//     are passable (no corner cutting).
//   - The default heuristic is the Euclidean distance, which is admissible
//     and consistent for this cost model, so the first expansion of the
//     destination yields an optimal path.
//   - Origin and Destination cells are passable like Free cells.
//
// Search state:
//
//   - Open holds discovered nodes, newest first; the next node expanded is
//     the first one with the minimum F = G + H, so ties go to the most
//     recently discovered node. This fixes the path shape on symmetric maps.
//   - Closed holds expanded nodes by position.
//   - A new candidate is compared against an existing node at the same
//     position in Closed, then in Open; the strictly cheaper one survives.
//   - Both sets are private to one FindPath call and discarded afterwards.
//
// API reference:
//
//	func FindPath(g *grid.Grid, opts ...Option) Result
//
//	  - Result.Length: path cost, or -1.
//	  - Result.Depth:  nodes on the origin…destination chain, or -1.
//	  - Result.Open:   open set size at termination, or -1.
//	  - Result.Closed: closed set size at termination, or -1.
//	  - Result.Path:   origin…destination cells, nil when not found.
//
//	NoPath == Result{-1, -1, -1, -1, nil} for an empty grid, unset
//	endpoints or an unreachable destination. Origin == destination yields
//	{0, 0, 0, 0, [origin]}.
//
// Grid effects:
//
//   - Path markings from earlier searches are always cleared first (except
//     when the grid is empty or an endpoint is unset, where nothing is touched).
//   - On success every intermediate cell of the path is set to grid.Path.
//
// Options:
//
//   - WithHeuristic(h):   replace the heuristic (Euclidean, Octile or any consistent custom one).
//   - WithOnExpand(fn):   observe every node moved to Closed.
//   - WithOnGenerate(fn): observe every node inserted into Open.
//   - WithOnFinish(fn):   observe final set sizes, also when no path exists.
//
// Thread safety:
//
//   - FindPath mutates the grid; callers must not share a grid across
//     goroutines during a search.
package astar
