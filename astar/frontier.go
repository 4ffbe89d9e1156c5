package astar

import (
	"github.com/zyedidia/generic/list"

	"github.com/katalvlaran/labyrinth/grid"
)

// openSet holds discovered, unexpanded nodes in insertion order, newest at
// the front, with a position index for O(1) lookup and removal.
// At most one node per position is stored.
type openSet struct {
	items *list.List[*Node]
	index map[grid.Coord]*list.Node[*Node]
}

func newOpenSet() *openSet {
	return &openSet{
		items: list.New[*Node](),
		index: make(map[grid.Coord]*list.Node[*Node]),
	}
}

// Len returns the number of nodes.
func (s *openSet) Len() int { return len(s.index) }

// PushFront inserts n ahead of every existing node. n.Pos must not be present.
func (s *openSet) PushFront(n *Node) {
	e := &list.Node[*Node]{Value: n}
	s.items.PushFrontNode(e)
	s.index[n.Pos] = e
}

// Find returns the node at p, if any.
func (s *openSet) Find(p grid.Coord) (*Node, bool) {
	e, ok := s.index[p]
	if !ok {
		return nil, false
	}

	return e.Value, true
}

// Remove deletes the node at p. Missing positions are ignored.
func (s *openSet) Remove(p grid.Coord) {
	e, ok := s.index[p]
	if !ok {
		return
	}
	s.items.Remove(e)
	delete(s.index, p)
}

// PopBest removes and returns the first node, front to back, whose F equals
// the minimum F in the set. Among equal-F nodes the most recently inserted
// one therefore wins. Returns nil when the set is empty.
// Complexity: O(n).
func (s *openSet) PopBest() *Node {
	var best *list.Node[*Node]
	for e := s.items.Front; e != nil; e = e.Next {
		// strict < keeps the earliest (newest) of equal candidates
		if best == nil || e.Value.F() < best.Value.F() {
			best = e
		}
	}
	if best == nil {
		return nil
	}
	s.items.Remove(best)
	delete(s.index, best.Value.Pos)

	return best.Value
}

// closedSet holds expanded nodes keyed by position.
type closedSet struct {
	nodes map[grid.Coord]*Node
}

func newClosedSet() *closedSet {
	return &closedSet{nodes: make(map[grid.Coord]*Node)}
}

// Len returns the number of nodes.
func (s *closedSet) Len() int { return len(s.nodes) }

// Add stores n, replacing any node at the same position.
func (s *closedSet) Add(n *Node) { s.nodes[n.Pos] = n }

// Find returns the node at p, if any.
func (s *closedSet) Find(p grid.Coord) (*Node, bool) {
	n, ok := s.nodes[p]
	return n, ok
}

// Remove deletes the node at p. Missing positions are ignored.
func (s *closedSet) Remove(p grid.Coord) { delete(s.nodes, p) }
