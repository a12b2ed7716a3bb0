// Package genetic - RNG policy.
//
// Determinism: every random decision of a run (initial genes, tournament
// draws, crossover cut points, mutation) comes from one *rand.Rand seeded
// from Config. Same seed and same Problem ⇒ identical runs, regardless of
// Config.Workers, because fitness evaluation never touches the generator.
//
// Concurrency: math/rand.Rand is not goroutine-safe; the engine only uses it
// from the goroutine that calls Run.
package genetic

import "math/rand"

// defaultRNGSeed is used when Config.Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic generator. seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// chance reports true with probability p. p ≤ 0 never fires and p ≥ 1
// always fires without consuming a draw.
func chance(rng *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return rng.Float64() < p
}
