// Package rng holds the process-wide uniform random source shared by
// weight initialization, genetic mutation, and noise injection.
//
// All draws are independent; reseeding exists so that experiments and
// tests can be made reproducible.
package rng

import (
	"math/rand"
	"time"
)

//nolint:gosec // math/rand is appropriate for ML parameter sampling (not security-critical)
var src = rand.New(rand.NewSource(time.Now().UnixNano()))

// Seed replaces the process-wide source with one seeded deterministically.
func Seed(seed int64) {
	src = rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility, not security
}

// Uniform returns a draw from the uniform distribution over [-1, 1).
func Uniform() float64 {
	return src.Float64()*2 - 1
}

// Between returns a draw from the uniform distribution over [min, max).
func Between(min, max float64) float64 {
	return src.Float64()*(max-min) + min
}
