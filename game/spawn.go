package game

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned when every interior cell is covered by the
// snake or a block. The loop treats it as the board being beaten rather
// than spinning in the sampler forever.
var ErrNoFreeCell = errors.New("no free interior cell remains")

// Spawner draws random free interior cells. It owns its rand.Rand so
// games can be made deterministic in tests by fixing the seed.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded with seed
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// FreeCell samples a uniformly random interior cell not covered by the
// snake or a block. Rejection sampling is bounded: after a few times
// the interior size in draws it falls back to a deterministic scan, so
// a nearly full board still terminates and a saturated one reports
// ErrNoFreeCell instead of looping.
func (sp *Spawner) FreeCell(g Grid, s *Snake, blocks map[Coord]struct{}) (Coord, error) {
	free := func(c Coord) bool {
		if s != nil && s.Contains(c) {
			return false
		}
		_, blocked := blocks[c]
		return !blocked
	}

	maxAttempts := 4 * g.InteriorCells()
	for i := 0; i < maxAttempts; i++ {
		c := Coord{
			Row: 2 + sp.rng.Intn(g.Rows-2),
			Col: 2 + sp.rng.Intn(g.Cols-2),
		}
		if free(c) {
			return c, nil
		}
	}

	// Scan from a random offset to keep the fallback unbiased-ish
	cells := g.InteriorCells()
	offset := sp.rng.Intn(cells)
	width := g.Cols - 2
	for i := 0; i < cells; i++ {
		n := (offset + i) % cells
		c := Coord{Row: 2 + n/width, Col: 2 + n%width}
		if free(c) {
			return c, nil
		}
	}

	return Coord{}, ErrNoFreeCell
}
