// Package nn implements the discern feedforward network engine.
//
// The package provides the building blocks of a classification network:
//   - Activation and Cost: closed sets of numeric kernels
//   - Neuron: weight vector plus bias, computing weighted sums
//   - Layer: neurons sharing one input width and one activation
//   - Builder and Network: construction and evaluation phases
//   - Mutator: in-place genetic perturbation of parameters
//
// A network is assembled with a Builder, which keeps the topology mutable,
// and frozen with Build, after which only evaluation, mutation, and
// persistence are possible. Forward evaluation, cost, and mutation are
// single-threaded CPU computations with no I/O.
package nn

import "github.com/discern-ml/discern/internal/rng"

// Mutator is the genetic-search capability: an in-place perturbation of
// numeric parameters by noise scaled with alpha.
//
// Neuron, Layer, and Network implement it independently, each delegating
// to the components it owns. Mutation is not idempotent and not
// reversible; it never changes topology or vector lengths.
type Mutator interface {
	// Mutate adds an independent uniform [-1, 1) draw, scaled by alpha,
	// to every owned weight and bias.
	Mutate(alpha float64)
}

// Seed reseeds the process-wide random source used for weight
// initialization and mutation, for reproducible runs.
func Seed(seed int64) {
	rng.Seed(seed)
}
