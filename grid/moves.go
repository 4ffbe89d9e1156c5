package grid

import "math"

// Directions lists the eight unit moves in expansion order: row delta
// -1, 0, +1 in the outer loop and column delta -1, 0, +1 in the inner loop.
var Directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Step is one legal move out of a cell.
type Step struct {
	Dir  Coord   // unit direction vector
	To   Coord   // destination cell
	Cost float64 // 1 for orthogonal moves, √2 for diagonal ones
}

// StepCost returns the Euclidean length of a unit direction vector:
// 1 for orthogonal moves and √2 for diagonal moves.
func StepCost(dir Coord) float64 {
	if dir.IsDiagonal() {
		return math.Sqrt2
	}

	return 1
}

// CanMove reports whether a single step from c along dir is legal: the
// target must be passable and, for diagonal moves, both orthogonal
// neighbours (c.Row+dr, c.Col) and (c.Row, c.Col+dc) must be passable too,
// so a path never squeezes between two touching obstacles.
func (g *Grid) CanMove(c, dir Coord) bool {
	if !g.IsPassable(c.Add(dir)) {
		return false
	}
	if dir.IsDiagonal() {
		if !g.IsPassable(Coord{Row: c.Row + dir.Row, Col: c.Col}) ||
			!g.IsPassable(Coord{Row: c.Row, Col: c.Col + dir.Col}) {
			return false
		}
	}

	return true
}

// Moves returns the legal steps out of c in Directions order.
// Complexity: O(1).
func (g *Grid) Moves(c Coord) []Step {
	out := make([]Step, 0, len(Directions))
	for _, d := range Directions {
		if !g.CanMove(c, d) {
			continue
		}
		out = append(out, Step{Dir: d, To: c.Add(d), Cost: StepCost(d)})
	}

	return out
}
