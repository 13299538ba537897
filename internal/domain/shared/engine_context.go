package shared

import "math/rand"

// EngineContext is the single source of randomness for a game. Every draw made
// while resolving a round must come from the same context so that replaying a
// round with the same seed and the same inputs reproduces identical results.
//
// The context is NOT safe for concurrent use; round processing is a
// single-threaded pass and must stay that way unless draw order can be proven
// equivalent to the sequential case.
type EngineContext struct {
	seed int64
	rng  *rand.Rand
}

// NewEngineContext creates a deterministic random context from a numeric seed.
func NewEngineContext(seed int64) *EngineContext {
	return &EngineContext{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the context was constructed with.
func (c *EngineContext) Seed() int64 {
	return c.seed
}

// Float64 returns the next value in [0, 1).
func (c *EngineContext) Float64() float64 {
	return c.rng.Float64()
}

// Range returns a value in [min, max).
func (c *EngineContext) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + c.rng.Float64()*(max-min)
}

// IntBetween returns an integer in [min, max] inclusive.
func (c *EngineContext) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + c.rng.Intn(max-min+1)
}

// Chance returns true with probability p (clamped to [0, 1]).
func (c *EngineContext) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return c.rng.Float64() < p
}
