package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayerShape(t *testing.T) {
	Seed(3)
	layer := NewLayer(16, 4, Sigmoid)

	assert.Equal(t, 4, layer.Size())
	assert.Equal(t, 16, layer.InputSize())
	assert.Equal(t, Sigmoid, layer.Activation)
	for _, neuron := range layer.Neurons {
		require.Len(t, neuron.Weights, 16)
	}
}

func TestLayerForward(t *testing.T) {
	layer := &Layer{
		Activation: Linear,
		Neurons: []*Neuron{
			{Weights: []float64{1, 0}, Bias: 0},
			{Weights: []float64{0, 1}, Bias: 1},
			{Weights: []float64{1, 1}, Bias: -1},
		},
	}

	outputs := layer.Forward([]float64{2, 3})

	assert.Equal(t, []float64{2, 4, 4}, outputs)
}

func TestLayerForwardAppliesActivation(t *testing.T) {
	layer := &Layer{
		Activation: ReLU,
		Neurons: []*Neuron{
			{Weights: []float64{1}, Bias: 0},
			{Weights: []float64{-1}, Bias: 0},
		},
	}

	outputs := layer.Forward([]float64{5})

	assert.Equal(t, []float64{5, 0}, outputs)
}

func TestLayerOutputsMemoized(t *testing.T) {
	layer := &Layer{
		Activation: Sigmoid,
		Neurons: []*Neuron{
			{Weights: []float64{2}, Bias: 0},
			{Weights: []float64{3}, Bias: 0},
		},
	}

	layer.Forward([]float64{1})

	// Outputs exposes the pre-activation sums, not the activated values.
	assert.Equal(t, []float64{2, 3}, layer.Outputs())
}

func TestLayerMutateDelegates(t *testing.T) {
	Seed(17)
	layer := NewLayer(8, 3, Linear)

	before := make([][]float64, layer.Size())
	for i, neuron := range layer.Neurons {
		before[i] = append([]float64(nil), neuron.Weights...)
	}

	layer.Mutate(0.1)

	for i, neuron := range layer.Neurons {
		assert.NotEqual(t, before[i], neuron.Weights, "neuron %d unchanged", i)
		require.Len(t, neuron.Weights, 8)
	}
}
