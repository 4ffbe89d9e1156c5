package main

import (
	"bytes"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

const helpLine = "arrows move  o origin  d dest  x obstacle  space search  q quit"

// viewer is the interactive editor state.
type viewer struct {
	g      *grid.Grid
	theme  render.Theme
	cursor grid.Coord
	status string
}

// view runs the interactive viewer on a real terminal until the user quits.
func view(g *grid.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{g: g, theme: render.DefaultTheme(), status: helpLine}
	v.draw(screen)
	for {
		if !v.handle(screen.PollEvent()) {
			return nil
		}
		v.draw(screen)
	}
}

// draw repaints the map, cursor and status line.
func (v *viewer) draw(s tcell.Screen) {
	s.Clear()
	_ = render.Screen(s, v.g, v.theme)
	render.Cursor(s, v.g, v.cursor, v.theme)

	y := 3 + 2*v.g.Rows()
	for i, line := range strings.Split(v.status, "\n") {
		for x, r := range []rune(line) {
			s.SetContent(x, y+i, r, nil, v.theme.Frame)
		}
	}
	s.Show()
}

// handle applies one event. It returns false when the viewer should close.
func (v *viewer) handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(grid.C(-1, 0))
	case tcell.KeyDown:
		v.move(grid.C(1, 0))
	case tcell.KeyLeft:
		v.move(grid.C(0, -1))
	case tcell.KeyRight:
		v.move(grid.C(0, 1))
	case tcell.KeyRune:
		return v.command(key.Rune())
	}

	return true
}

func (v *viewer) move(d grid.Coord) {
	if next := v.cursor.Add(d); v.g.InBounds(next) {
		v.cursor = next
	}
}

// command handles a printable key.
func (v *viewer) command(r rune) bool {
	var err error
	switch r {
	case 'q':
		return false
	case 'o':
		err = v.g.SetOrigin(v.cursor)
	case 'd':
		err = v.g.SetDestination(v.cursor)
	case 'x':
		err = v.toggle()
	case ' ':
		v.search()
		return true
	default:
		return true
	}

	v.status = helpLine
	if err != nil {
		v.status = err.Error()
	}

	return true
}

// toggle flips the cursor cell between Free and Obstacle. Editing the map
// invalidates any displayed path.
func (v *viewer) toggle() error {
	v.g.ClearPath()
	switch v.g.At(v.cursor) {
	case grid.Obstacle:
		return v.g.Set(v.cursor, grid.Free)
	default:
		return v.g.Set(v.cursor, grid.Obstacle)
	}
}

// search runs FindPath and shows its summary in the status line.
func (v *viewer) search() {
	var buf bytes.Buffer
	_ = render.Summary(&buf, astar.FindPath(v.g))
	v.status = strings.TrimRight(buf.String(), "\n")
}
