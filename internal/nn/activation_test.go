package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestActivationPreservesLength(t *testing.T) {
	values := []float64{-2, -0.5, 0, 0.5, 2}

	for _, activation := range []Activation{Linear, ReLU, Sigmoid, Softmax} {
		outputs := activation.Apply(values)
		assert.Len(t, outputs, len(values), "activation %q changed vector length", activation)
	}
}

func TestActivationDoesNotModifyInput(t *testing.T) {
	values := []float64{-1, 0, 1}

	for _, activation := range []Activation{Linear, ReLU, Sigmoid, Softmax} {
		activation.Apply(values)
		assert.Equal(t, []float64{-1, 0, 1}, values, "activation %q modified its input", activation)
	}
}

func TestLinearIsIdentity(t *testing.T) {
	values := []float64{-3.5, 0, 1.25}
	assert.Equal(t, values, Linear.Apply(values))
}

// The empty tag defaults to Linear, matching a persisted layer with no
// activation recorded.
func TestEmptyActivationDefaultsToLinear(t *testing.T) {
	values := []float64{1, 2, 3}
	assert.Equal(t, values, Activation("").Apply(values))
}

func TestReLUClampsNegatives(t *testing.T) {
	outputs := ReLU.Apply([]float64{-2, -0.001, 0, 0.001, 3})
	assert.Equal(t, []float64{0, 0, 0, 0.001, 3}, outputs)
}

func TestSigmoidRangeAndValues(t *testing.T) {
	values := []float64{-10, -1, 0, 1, 10}
	outputs := Sigmoid.Apply(values)

	for i, out := range outputs {
		assert.Greater(t, out, 0.0)
		assert.Less(t, out, 1.0)
		expected := 1 / (1 + math.Exp(-values[i]))
		assert.InDelta(t, expected, out, 1e-12)
	}

	// sigmoid(0) = 0.5 exactly
	assert.Equal(t, 0.5, outputs[2])
}

func TestSoftmaxSumsToOne(t *testing.T) {
	outputs := Softmax.Apply([]float64{-1, 0, 1, 2})

	require.Len(t, outputs, 4)
	assert.InDelta(t, 1.0, floats.Sum(outputs), 1e-12)
	for _, out := range outputs {
		assert.Greater(t, out, 0.0)
		assert.Less(t, out, 1.0)
	}
}

func TestSoftmaxUniform(t *testing.T) {
	outputs := Softmax.Apply([]float64{3, 3})
	assert.InDelta(t, 0.5, outputs[0], 1e-12)
	assert.InDelta(t, 0.5, outputs[1], 1e-12)
}

func TestUnknownActivationPanics(t *testing.T) {
	assert.Panics(t, func() {
		Activation("tanh").Apply([]float64{1})
	})
}
