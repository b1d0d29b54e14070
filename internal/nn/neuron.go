package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/discern-ml/discern/internal/rng"
)

// Neuron owns a weight vector and a bias and computes weighted sums
// against input vectors of matching width.
//
// The last computed sum is memoized in Output as a byproduct of the
// forward pass. It is observable state, kept for introspection and as a
// hook for gradient-based training.
type Neuron struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Output  float64   `json:"output"`
}

// NewNeuron creates a neuron for the given input width, with every weight
// and the bias drawn independently and uniformly from [-1, 1).
func NewNeuron(inputSize int) *Neuron {
	weights := make([]float64, inputSize)
	for i := range weights {
		weights[i] = rng.Uniform()
	}

	return &Neuron{
		Weights: weights,
		Bias:    rng.Uniform(),
	}
}

// WeightedSum computes dot(weights, inputs) + bias, memoizes it in Output,
// and returns it.
//
// The input width must match the weight count exactly. A mismatch is a
// construction bug, never a valid runtime state, and panics instead of
// truncating or padding.
func (n *Neuron) WeightedSum(inputs []float64) float64 {
	if len(inputs) != len(n.Weights) {
		panic(fmt.Sprintf("nn: invalid dot product, %d inputs against %d weights", len(inputs), len(n.Weights)))
	}

	n.Output = floats.Dot(n.Weights, inputs) + n.Bias
	return n.Output
}

// Mutate perturbs every weight and the bias in place by an independent
// uniform [-1, 1) draw scaled by alpha.
func (n *Neuron) Mutate(alpha float64) {
	for i := range n.Weights {
		n.Weights[i] += rng.Uniform() * alpha
	}
	n.Bias += rng.Uniform() * alpha
}
