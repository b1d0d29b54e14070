package nn

import (
	"fmt"
	"math"
)

// Cost selects the loss computed between network outputs and one-hot
// targets. Like Activation, the set is closed.
type Cost string

const (
	// MeanSquaredError is sum((target-output)^2) / len, and the default
	// when none is specified.
	MeanSquaredError Cost = "mse"
	// CategoricalCrossEntropy applies Softmax to the outputs first and
	// then computes -sum(target * ln(softmax)).
	//
	// Because the softmax is applied internally, callers must pass raw
	// outputs, never pre-softmaxed ones.
	CategoricalCrossEntropy Cost = "cce"
)

// Apply computes the scalar loss between outputs and targets.
//
// The two vectors must have the same length; a mismatch is a construction
// bug and panics rather than being coerced.
func (c Cost) Apply(outputs, targets []float64) float64 {
	if len(outputs) != len(targets) {
		panic(fmt.Sprintf("nn: cost expects equal lengths, got %d outputs and %d targets", len(outputs), len(targets)))
	}

	switch c {
	case MeanSquaredError, "":
		sum := 0.0
		for i, output := range outputs {
			diff := targets[i] - output
			sum += diff * diff
		}
		return sum / float64(len(outputs))
	case CategoricalCrossEntropy:
		softened := Softmax.Apply(outputs)
		sum := 0.0
		for i, target := range targets {
			sum += target * math.Log(softened[i])
		}
		return -sum
	default:
		panic(fmt.Sprintf("nn: unknown cost %q", string(c)))
	}
}
