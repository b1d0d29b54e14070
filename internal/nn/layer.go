package nn

// Layer is an ordered group of neurons sharing one input width and one
// activation function. The layer's output width equals its neuron count.
type Layer struct {
	Neurons    []*Neuron  `json:"neurons"`
	Activation Activation `json:"activation"`
}

// NewLayer creates a layer of size freshly initialized neurons, each with
// inputSize weights.
func NewLayer(inputSize, size int, activation Activation) *Layer {
	neurons := make([]*Neuron, size)
	for i := range neurons {
		neurons[i] = NewNeuron(inputSize)
	}

	return &Layer{
		Neurons:    neurons,
		Activation: activation,
	}
}

// Size returns the neuron count, which is the layer's output width.
func (l *Layer) Size() int {
	return len(l.Neurons)
}

// InputSize returns the input width shared by the layer's neurons, or 0
// for an empty layer.
func (l *Layer) InputSize() int {
	if len(l.Neurons) == 0 {
		return 0
	}
	return len(l.Neurons[0].Weights)
}

// Outputs returns the memoized weighted sums from the last forward pass,
// in neuron order.
func (l *Layer) Outputs() []float64 {
	outputs := make([]float64, len(l.Neurons))
	for i, neuron := range l.Neurons {
		outputs[i] = neuron.Output
	}
	return outputs
}

// Forward computes every neuron's weighted sum against inputs, applies the
// layer's activation to the resulting vector, and returns the activated
// vector. Neurons are independent, so evaluation order does not affect the
// result.
func (l *Layer) Forward(inputs []float64) []float64 {
	sums := make([]float64, len(l.Neurons))
	for i, neuron := range l.Neurons {
		sums[i] = neuron.WeightedSum(inputs)
	}

	return l.Activation.Apply(sums)
}

// Mutate delegates to every neuron with the same alpha.
func (l *Layer) Mutate(alpha float64) {
	for _, neuron := range l.Neurons {
		neuron.Mutate(alpha)
	}
}
