// Package randutil centralises construction of deterministic random sources
// and the small sampling helpers the game engine builds on.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Chance reports true with probability p (0 <= p <= 1).
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Pick returns a uniformly chosen element of choices.
// It panics on an empty slice; callers pass fixed non-empty sets.
func Pick[T any](rng *rand.Rand, choices []T) T {
	return choices[rng.IntN(len(choices))]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
