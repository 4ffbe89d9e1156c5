// File: astar/example_test.go
package astar_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath loads a small map with a wall and routes around it.
// Scenario:
//
//   - 4×5 map, wall in column 2 except the bottom row.
//   - Origin (0,0), destination (0,4).
//   - The gap at (3,2) can only be entered orthogonally, so the cheapest
//     route costs 6 + 2√2 over 8 steps.
func ExampleFindPath() {
	src := `LABIRINTO 4 5
1 1 0 1 1
1 1 0 1 1
1 1 0 1 1
1 1 1 1 1
`
	g := grid.New()
	if err := g.Load(strings.NewReader(src)); err != nil {
		fmt.Println(err)
		return
	}
	_ = g.SetOrigin(grid.C(0, 0))
	_ = g.SetDestination(grid.C(0, 4))

	res := astar.FindPath(g)
	fmt.Printf("length=%.4f depth=%d\n", res.Length, res.Depth)
	fmt.Println("through gap:", g.At(grid.C(3, 2)) == grid.Path)

	// Output:
	// length=8.8284 depth=9
	// through gap: true
}

// ExampleFindPath_noPath shows the sentinel result for a walled-off destination.
func ExampleFindPath_noPath() {
	g := grid.New()
	_ = g.FromOccupancy([][]bool{
		{true, false, true},
		{true, false, true},
	})
	_ = g.SetOrigin(grid.C(0, 0))
	_ = g.SetDestination(grid.C(1, 2))

	res := astar.FindPath(g)
	fmt.Println(res.Found(), res.Length, res.Depth, res.Open, res.Closed)

	// Output:
	// false -1 -1 -1 -1
}
