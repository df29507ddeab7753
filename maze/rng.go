package maze

import "math/rand"

// rngFromSeed builds the single deterministic generator behind one
// GenerateMaze call. The seed is taken verbatim: equal seeds reproduce
// equal mazes, and distinct seeds follow math/rand's own dispersion.
//
// math/rand (not crypto/rand) is intentional: maze carving needs
// reproducibility, not unpredictability.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
