// Package labyrinth is a small toolkit for shortest-path search on 2-D grid
// maps: load or generate a map, place an origin and a destination, run A*
// and look at the result in a terminal or as a picture.
//
// 🚀 What is labyrinth?
//
//	A focused, deterministic grid path-finding library that brings together:
//		• Grid model: cells, endpoints, bounds and the LABIRINTO file format
//		• Seeded random maps: reproducible obstacle layouts
//		• Connectivity: 8-directional regions for quick reachability checks
//		• A* search: Euclidean cost, no corner cutting, stable tie-breaking
//		• Rendering: console text, tcell screens, PNG images
//
// ✨ Why choose labyrinth?
//
//   - Reproducible – the same map and endpoints always give the same path
//   - Honest results – path length, depth and frontier sizes on every run
//   - Observable – hooks (OnExpand, OnGenerate, OnFinish) for tracing searches
//   - Small surface – functional options and sentinel errors, nothing hidden
//
// Under the hood, everything is organized under these packages:
//
//	grid/            Coord, CellState, Grid, Limits; load/save; generation; regions
//	astar/           search nodes, Open/Closed sets and FindPath
//	render/          Text, Screen (tcell), PNG (gg) and result summaries
//	cmd/labyrinth/   command line front end with an interactive viewer
//
// Quick example:
//
//	g := grid.New()
//	_ = g.LoadFile("maze.txt")
//	_ = g.SetOrigin(grid.C(0, 0))
//	_ = g.SetDestination(grid.C(9, 9))
//	res := astar.FindPath(g)
//	_ = render.Text(os.Stdout, g)
//	_ = render.Summary(os.Stdout, res)
package labyrinth
