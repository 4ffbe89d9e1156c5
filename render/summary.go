package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/labyrinth/astar"
)

// Summary writes the search statistics of r to w, one "key: value" line
// each, or the single line "no path" when r carries none.
func Summary(w io.Writer, r astar.Result) error {
	if !r.Found() {
		_, err := fmt.Fprintln(w, "no path")

		return err
	}
	_, err := fmt.Fprintf(w, "length: %.4f\ndepth: %d\nopen: %d\nclosed: %d\n",
		r.Length, r.Depth, r.Open, r.Closed)

	return err
}
