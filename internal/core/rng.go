package core

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source threaded through every draw a simulation makes.
// A single instance lives for one run; tests substitute scripted sources.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// is replaced by one taken from the clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Seed reports the seed the generator was built from.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Chance performs a Bernoulli trial with probability p against src.
func Chance(src Rand, p float64) bool {
	return src.Float64() < p
}
