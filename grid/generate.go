package grid

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0 or a nil *rand.Rand.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
// A *rand.Rand is not goroutine-safe; do not share one across goroutines.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Generate replaces the grid with a random rows×cols map.
//
// If obstacleFraction <= 0 a fraction is drawn uniformly from
// [MinObstacle, MaxObstacle]. Each cell then independently becomes an
// Obstacle with probability obstacleFraction. A nil rng uses NewRand(0).
//
// Errors (the grid is left empty on any of them):
//   - ErrDimensions       if rows or cols fall outside the Limits.
//   - ErrObstacleFraction if obstacleFraction > 0 and outside the Limits.
//
// Complexity: O(rows×cols).
func (g *Grid) Generate(rows, cols int, obstacleFraction float64, rng *rand.Rand) error {
	g.Clear()
	if rng == nil {
		rng = NewRand(0)
	}

	if obstacleFraction <= 0 {
		lo, hi := g.limits.MinObstacle, g.limits.MaxObstacle
		obstacleFraction = lo + (hi-lo)*rng.Float64()
	}
	if !g.limits.dimsOK(rows, cols) {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	if !g.limits.fractionOK(obstacleFraction) {
		return fmt.Errorf("%w: %.3f", ErrObstacleFraction, obstacleFraction)
	}

	g.resize(rows, cols)
	for i := range g.cells {
		if rng.Float64() < obstacleFraction {
			g.cells[i] = Obstacle
		}
	}

	return nil
}
