package grid

import (
	"fmt"
	"math/rand"
)

// Generate returns a rows×cols grid filled by Fill with a *rand.Rand seeded
// from seed. The same (rows, cols, wallProbability, seed) always yields the
// same layout.
//
// The result may have no route from Start to Goal; that is a valid maze.
func Generate(rows, cols int, wallProbability float64, seed int64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = g.Fill(wallProbability, rand.New(rand.NewSource(seed))); err != nil {
		return nil, err
	}
	return g, nil
}

// Fill re-randomizes every cell in place: Wall with probability
// wallProbability, Open otherwise. Start and Goal are then forced
// unconditionally, even when the draw chose Wall for their cells.
//
// rng must not be shared with other goroutines while Fill runs.
// Complexity: O(rows×cols).
func (g *Grid) Fill(wallProbability float64, rng *rand.Rand) error {
	if wallProbability < 0 || wallProbability > 1 {
		return fmt.Errorf("%w: got %v", ErrWallProbability, wallProbability)
	}
	for i := range g.cells {
		if rng.Float64() < wallProbability {
			g.cells[i] = Wall
		} else {
			g.cells[i] = Open
		}
	}
	g.placeCorners()

	return nil
}
