package core

import "math/rand"

// Rand is the single source of randomness the simulation draws from.
// Tests substitute a scripted implementation to make spawn timing exact.
type Rand interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
