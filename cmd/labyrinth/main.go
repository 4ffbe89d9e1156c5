// Command labyrinth loads or generates a grid map, finds the shortest path
// between two cells and renders the result.
//
// Usage examples:
//
// # Search a saved map and print it
// labyrinth -load maze.txt -origin 0,0 -dest 9,9
//
// # Generate a seeded 20x30 map with 25% obstacles, save it and a picture
// labyrinth -gen 20x30 -obstacles 0.25 -seed 7 -origin 0,0 -dest 19,29 -save maze.txt -png maze.png
//
// # Edit and search interactively
// labyrinth -gen 15x15 -view
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

var errUsage = errors.New("labyrinth: one of -load or -gen is required")

// config holds the parsed command line.
type config struct {
	load      string
	gen       string
	obstacles float64
	seed      int64
	origin    string
	dest      string
	save      string
	png       string
	cell      int
	view      bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("labyrinth: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.load, "load", "", "Load the map from a LABIRINTO file")
	fs.StringVar(&cfg.gen, "gen", "", "Generate a ROWSxCOLS map instead of loading one")
	fs.Float64Var(&cfg.obstacles, "obstacles", 0, "Obstacle fraction for -gen (0 = random within limits)")
	fs.Int64Var(&cfg.seed, "seed", 0, "Seed for -gen (0 = fixed default)")
	fs.StringVar(&cfg.origin, "origin", "", "Origin cell as row,col")
	fs.StringVar(&cfg.dest, "dest", "", "Destination cell as row,col")
	fs.StringVar(&cfg.save, "save", "", "Save the map to a LABIRINTO file")
	fs.StringVar(&cfg.png, "png", "", "Write a PNG picture of the map")
	fs.IntVar(&cfg.cell, "cell", 16, "PNG pixels per cell")
	fs.BoolVar(&cfg.view, "view", false, "Open the interactive terminal viewer")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if (cfg.load == "") == (cfg.gen == "") {
		return config{}, errUsage
	}

	return cfg, nil
}

// parseDims parses "ROWSxCOLS".
func parseDims(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not ROWSxCOLS", grid.ErrDimensions, s)
	}
	if rows, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not ROWSxCOLS", grid.ErrDimensions, s)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not ROWSxCOLS", grid.ErrDimensions, s)
	}

	return rows, cols, nil
}

// build produces the grid described by cfg, endpoints included.
func build(cfg config) (*grid.Grid, error) {
	g := grid.New()

	// 1) Map source
	if cfg.load != "" {
		if err := g.LoadFile(cfg.load); err != nil {
			return nil, err
		}
	} else {
		rows, cols, err := parseDims(cfg.gen)
		if err != nil {
			return nil, err
		}
		if err := g.Generate(rows, cols, cfg.obstacles, grid.NewRand(cfg.seed)); err != nil {
			return nil, err
		}
	}

	// 2) Endpoints
	for _, ep := range []struct {
		flag string
		set  func(grid.Coord) error
	}{
		{cfg.origin, g.SetOrigin},
		{cfg.dest, g.SetDestination},
	} {
		if ep.flag == "" {
			continue
		}
		c, err := grid.ParseCoord(ep.flag)
		if err != nil {
			return nil, err
		}
		if err := ep.set(c); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// run executes one non-interactive session, or hands over to the viewer.
func run(cfg config, stdout io.Writer) error {
	g, err := build(cfg)
	if err != nil {
		return err
	}
	log.Printf("map %dx%d, %d connected regions", g.Rows(), g.Cols(), len(g.Regions()))

	if cfg.view {
		if err := view(g); err != nil {
			return err
		}
	} else if g.EndpointsSet() {
		res := astar.FindPath(g)
		if err := render.Text(stdout, g); err != nil {
			return err
		}
		if err := render.Summary(stdout, res); err != nil {
			return err
		}
	} else {
		if err := render.Text(stdout, g); err != nil {
			return err
		}
	}

	if cfg.save != "" {
		if err := g.SaveFile(cfg.save); err != nil {
			return err
		}
		log.Printf("saved map to %s", cfg.save)
	}
	if cfg.png != "" {
		if err := writePNG(cfg.png, g, cfg.cell); err != nil {
			return err
		}
		log.Printf("saved picture to %s", cfg.png)
	}

	return nil
}

func writePNG(path string, g *grid.Grid, cell int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.PNG(f, g, cell); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	return f.Close()
}
