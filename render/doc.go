// Package render draws a grid.Grid for people: as console text, onto a
// tcell terminal screen, or as a PNG image. It also formats astar results.
//
// All renderers are read-only with respect to the grid.
//
//   - Text:    the fixed console layout (column header, row labels, "--+" rules).
//   - Screen:  the same layout on any Canvas, styled per cell state by a Theme.
//   - PNG:     one square per cell via fogleman/gg.
//   - Summary: length, depth and set sizes of an astar.Result.
//
// CellOrigin and CellAt convert between grid cells and text-layout
// positions, so interactive viewers can map a cursor onto cells.
package render
