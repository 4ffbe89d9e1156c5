package grid

// Regions finds all connected regions of passable cells under the same
// move rule the path search uses: eight directions, no corner cutting.
// Regions are returned in row-major order of their first cell, and each
// region lists its cells in breadth-first order from that cell.
//
// Diagonal legality is symmetric (both orthogonal neighbours of a diagonal
// move are shared by its reverse), so the relation is an equivalence.
//
// Time:   O(rows·cols·8).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.cells))
	var regions [][]Coord

	for i, s := range g.cells {
		if s == Obstacle || seen[i] {
			continue
		}
		// BFS to collect the region
		queue := []Coord{g.Coordinate(i)}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, st := range g.Moves(queue[qi]) {
				j := g.index(st.To)
				if !seen[j] {
					seen[j] = true
					queue = append(queue, st.To)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf returns a rows·cols slice mapping each cell's row-major index to
// its region number in Regions order, or -1 for obstacles.
func (g *Grid) RegionOf() []int {
	label := make([]int, len(g.cells))
	for i := range label {
		label[i] = -1
	}
	for n, region := range g.Regions() {
		for _, c := range region {
			label[g.index(c)] = n
		}
	}

	return label
}

// Connected reports whether a path exists between a and b under the search
// move rule. It is false when either cell is not passable.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	label := g.RegionOf()

	return label[g.index(a)] == label[g.index(b)]
}
