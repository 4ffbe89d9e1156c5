// Package astar defines the search node, result and option types for the
// grid A* engine.
package astar

import (
	"math"

	"github.com/katalvlaran/labyrinth/grid"
)

// Node is one search record: a position, how it was reached and its costs.
//
// Root marks the node the search started from. It replaces any coordinate
// sentinel for "no predecessor"; Pred is meaningless when Root is true.
type Node struct {
	Pos  grid.Coord // cell this node stands on
	Pred grid.Coord // predecessor cell on the best known route
	Root bool       // true only for the origin node
	G    float64    // accumulated cost from the origin
	H    float64    // heuristic estimate to the destination
}

// step returns the successor reached from n along dir, with G = n.G + step cost.
func (n *Node) step(to grid.Coord, dir grid.Coord) *Node {
	return &Node{Pos: to, Pred: n.Pos, G: n.G + grid.StepCost(dir)}
}

// F returns G+H. It is always derived, never stored.
func (n Node) F() float64 { return n.G + n.H }

// Result is the outcome of FindPath.
//
//	Length – total step cost of the path, or -1 when there is no path.
//	Depth  – number of nodes on the reconstructed chain, origin and destination included.
//	Open   – size of the open set when the search stopped.
//	Closed – size of the closed set when the search stopped.
//	Path   – cells from origin to destination inclusive; nil when there is no path.
//
// Depth, Open and Closed are -1 exactly when Length is -1.
type Result struct {
	Length float64
	Depth  int
	Open   int
	Closed int
	Path   []grid.Coord
}

// NoPath is the result for invalid preconditions or an exhausted search.
var NoPath = Result{Length: -1, Depth: -1, Open: -1, Closed: -1}

// Found reports whether the result carries a path.
func (r Result) Found() bool { return r.Length >= 0 }

// Heuristic estimates the remaining cost between two cells.
//
// It must be consistent under the 1/√2 step model: h(a) ≤ cost(a,b) + h(b)
// for every legal step a→b, and h(destination) = 0. Admissibility alone is
// not enough. An inconsistent heuristic can let a later, cheaper candidate
// evict an expanded node from Closed, breaking the predecessor chain, and
// FindPath then reports NoPath even though a route exists.
type Heuristic func(from, to grid.Coord) float64

// Euclidean is the straight-line distance. Admissible and consistent for
// unit orthogonal and √2 diagonal steps.
func Euclidean(from, to grid.Coord) float64 {
	return math.Hypot(float64(to.Row-from.Row), float64(to.Col-from.Col))
}

// Octile is the exact cost of an unobstructed 8-directional route:
// max(dr,dc) + (√2-1)·min(dr,dc). Tighter than Euclidean, still consistent.
func Octile(from, to grid.Coord) float64 {
	dr := math.Abs(float64(to.Row - from.Row))
	dc := math.Abs(float64(to.Col - from.Col))

	return dr + dc + (math.Sqrt2-2)*math.Min(dr, dc)
}

// Stats is passed to the OnFinish hook once the main loop stops.
type Stats struct {
	Found  bool
	Open   int // open set size at termination
	Closed int // closed set size at termination
}

// Options configures FindPath.
//
// Heuristic  – remaining-cost estimate (default Euclidean).
// OnExpand   – called when a node moves from Open to Closed.
// OnGenerate – called for each candidate that is inserted into Open.
// OnFinish   – called once when the main loop stops, found or not.
type Options struct {
	Heuristic  Heuristic
	OnExpand   func(n Node)
	OnGenerate func(n Node)
	OnFinish   func(s Stats)
}

// Option is a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns Euclidean distance and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Euclidean,
		OnExpand:   func(Node) {},
		OnGenerate: func(Node) {},
		OnFinish:   func(Stats) {},
	}
}

// WithHeuristic replaces the heuristic. Nil is ignored.
// h must be consistent (see Heuristic); Euclidean and Octile both are.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback for every expanded node.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback for every node inserted into Open.
func WithOnGenerate(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithOnFinish registers a callback that receives the final set sizes,
// including on failure where Result carries only -1.
func WithOnFinish(fn func(s Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}
