package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Activation selects the function applied to a layer's vector of weighted
// sums. The set is closed; dispatch is an exhaustive switch, not a
// registry.
type Activation string

const (
	// Linear is the identity activation and the default when none is
	// specified.
	Linear Activation = "linear"
	// ReLU is the elementwise max(0, x) activation.
	ReLU Activation = "relu"
	// Sigmoid is the elementwise 1 / (1 + exp(-x)) activation.
	Sigmoid Activation = "sigmoid"
	// Softmax normalizes the whole vector to exp(x_i) / sum(exp(x_j)).
	//
	// No max-subtraction shift is performed before exponentiating, so
	// inputs must stay within a range where exp does not overflow.
	Softmax Activation = "softmax"
)

// Apply maps a vector of pre-activation sums to a vector of activations of
// the same length. It is pure: the input slice is never modified.
//
// An unknown activation tag is a construction bug and panics.
func (a Activation) Apply(values []float64) []float64 {
	outputs := make([]float64, len(values))

	switch a {
	case Linear, "":
		copy(outputs, values)
	case ReLU:
		for i, v := range values {
			outputs[i] = math.Max(0, v)
		}
	case Sigmoid:
		for i, v := range values {
			outputs[i] = 1 / (1 + math.Exp(-v))
		}
	case Softmax:
		for i, v := range values {
			outputs[i] = math.Exp(v)
		}
		partition := floats.Sum(outputs)
		for i := range outputs {
			outputs[i] /= partition
		}
	default:
		panic(fmt.Sprintf("nn: unknown activation %q", string(a)))
	}

	return outputs
}
