// Package astar implements A* shortest-path search on a grid.Grid with
// 8-directional movement and no corner cutting.
//
// Notes on implementation choices:
//
//   - Open is an insertion-ordered list with new nodes at the front; the
//     node picked for expansion is the first one holding the minimum F, so
//     ties favour the most recently discovered node.
//   - Duplicate positions are resolved against both Closed and Open: the
//     entry with the lower F survives and the other is dropped, so each
//     position occupies at most one slot across the two sets.
//   - Every lookup returns (node, ok); only the found branch reads the node.
//   - The origin node carries an explicit Root flag instead of a sentinel
//     predecessor coordinate.
package astar

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// FindPath searches for the cheapest route from g's origin to its
// destination and marks the intermediate cells as grid.Path.
//
// Preconditions and edge cases, in order:
//  1. g nil, empty, or origin/destination unset → NoPath, g untouched.
//  2. g.ClearPath() is always called before searching.
//  3. origin == destination → {0, 0, 0, 0} with Path = [origin].
//  4. Otherwise the search runs; an exhausted open set yields NoPath.
//
// Step costs are 1 for orthogonal and √2 for diagonal moves. With the
// default Euclidean heuristic the returned Length is optimal.
//
// Complexity:
//
//   - Time:  O(N²) for N passable cells (linear scan of Open per expansion).
//   - Space: O(N); Open and Closed together never exceed N nodes.
func FindPath(g *grid.Grid, opts ...Option) Result {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate preconditions
	if g == nil || g.Empty() || !g.EndpointsSet() {
		return NoPath
	}
	origin, _ := g.Origin()
	dest, _ := g.Destination()

	// 3) Drop stale markings unconditionally
	g.ClearPath()

	// 4) Trivial path
	if origin == dest {
		return Result{Path: []grid.Coord{origin}}
	}

	// 5) Search
	r := &runner{
		g:       g,
		options: cfg,
		origin:  origin,
		dest:    dest,
		open:    newOpenSet(),
		closed:  newClosedSet(),
	}
	r.init()
	goal, found := r.process()
	r.options.OnFinish(Stats{Found: found, Open: r.open.Len(), Closed: r.closed.Len()})
	if !found {
		return NoPath
	}

	return r.reconstruct(goal)
}

// runner holds the mutable state of a single FindPath call.
type runner struct {
	g       *grid.Grid // borrowed for the call; only Path cells are written
	options Options
	origin  grid.Coord
	dest    grid.Coord
	open    *openSet
	closed  *closedSet
}

// init seeds Open with the root node.
func (r *runner) init() {
	r.open.PushFront(&Node{
		Pos:  r.origin,
		Root: true,
		G:    0,
		H:    r.options.Heuristic(r.origin, r.dest),
	})
}

// process runs the main loop until the destination is expanded or Open is
// empty. It returns the destination's closed node on success.
func (r *runner) process() (*Node, bool) {
	for r.open.Len() > 0 {
		// 1) Best node, first among equal F
		cur := r.open.PopBest()

		// 2) Move it to Closed
		r.closed.Add(cur)
		r.options.OnExpand(*cur)

		// 3) Goal test on expansion, not on generation
		if cur.Pos == r.dest {
			return cur, true
		}

		// 4) Generate successors
		r.expand(cur)
	}

	return nil, false
}

// expand generates every legal successor of cur and merges it into Open.
func (r *runner) expand(cur *Node) {
	for _, st := range r.g.Moves(cur.Pos) {
		cand := cur.step(st.To, st.Dir)
		cand.H = r.options.Heuristic(st.To, r.dest)
		if !r.relax(cand) {
			continue
		}
		r.open.PushFront(cand)
		r.options.OnGenerate(*cand)
	}
}

// relax resolves cand against an existing entry for the same position in
// Closed, then in Open. The entry with the strictly lower F survives; on a
// tie the existing entry wins. It reports whether cand should be inserted.
func (r *runner) relax(cand *Node) bool {
	if old, ok := r.closed.Find(cand.Pos); ok {
		if cand.F() >= old.F() {
			return false
		}
		r.closed.Remove(cand.Pos)
	}
	if old, ok := r.open.Find(cand.Pos); ok {
		if cand.F() >= old.F() {
			return false
		}
		r.open.Remove(cand.Pos)
	}

	return true
}

// reconstruct walks predecessors from goal back to the root node, marks the
// intermediate cells as grid.Path and assembles the Result.
// A predecessor missing from Closed, a cycle in the chain or an inner cell
// that refuses the Path state means the closed set no longer describes a
// route; NoPath is returned and the grid is left without Path cells.
func (r *runner) reconstruct(goal *Node) Result {
	chain := []grid.Coord{goal.Pos}
	seen := mapset.New[grid.Coord]()
	length := 0.0

	for cur := goal; !cur.Root; {
		if seen.Has(cur.Pos) {
			return NoPath
		}
		seen.Put(cur.Pos)

		dir := grid.Coord{Row: cur.Pos.Row - cur.Pred.Row, Col: cur.Pos.Col - cur.Pred.Col}
		length += grid.StepCost(dir)

		prev, ok := r.closed.Find(cur.Pred)
		if !ok {
			return NoPath
		}
		chain = append(chain, prev.Pos)
		cur = prev
	}

	// chain runs destination → origin; reverse it and mark the inner cells.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	for _, c := range chain[1 : len(chain)-1] {
		if err := r.g.Set(c, grid.Path); err != nil {
			r.g.ClearPath()
			return NoPath
		}
	}

	return Result{
		Length: length,
		Depth:  len(chain),
		Open:   r.open.Len(),
		Closed: r.closed.Len(),
		Path:   chain,
	}
}
