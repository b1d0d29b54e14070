package nn

import (
	"github.com/discern-ml/discern/internal/data"
)

// Builder assembles a network layer by layer. It is the only phase in
// which the topology is mutable; Build freezes it and hands back a
// Network, after which no code path can add or remove layers.
//
// Methods chain in builder style:
//
//	net := nn.NewNetwork(64 * 64 * 4).
//	    AddLayer(64, nn.Sigmoid).
//	    AddLayer(2, nn.Sigmoid).
//	    Build(nn.MeanSquaredError)
type Builder struct {
	inputSize int
	layers    []*Layer
}

// NewNetwork starts building a network for input vectors of the given
// width, with zero layers and the default cost.
func NewNetwork(inputSize int) *Builder {
	return &Builder{inputSize: inputSize}
}

// outputSize is the current output width: the last layer's size, or the
// input width while no layers exist.
func (b *Builder) outputSize() int {
	if len(b.layers) == 0 {
		return b.inputSize
	}
	return b.layers[len(b.layers)-1].Size()
}

// AddLayer appends a layer of size freshly initialized neurons. The new
// layer's input width is derived from the current output width, which is
// what keeps adjacent layers compatible by construction.
func (b *Builder) AddLayer(size int, activation Activation) *Builder {
	b.layers = append(b.layers, NewLayer(b.outputSize(), size, activation))
	return b
}

// Build fixes the cost function and freezes the topology. The builder must
// not be used afterwards.
func (b *Builder) Build(cost Cost) *Network {
	net := &Network{
		inputSize: b.inputSize,
		layers:    b.layers,
		cost:      cost,
	}
	b.layers = nil
	return net
}

// Network is an evaluable feedforward network with frozen topology.
//
// It exclusively owns its layers, which exclusively own their neurons; the
// object graph is a strict tree, so independent networks never alias and a
// caller may evaluate or mutate them independently.
type Network struct {
	inputSize int
	layers    []*Layer
	cost      Cost
}

// InputSize returns the input vector width the network was built for.
func (n *Network) InputSize() int {
	return n.inputSize
}

// OutputSize returns the width of the final layer, or the input width for
// a network with no layers.
func (n *Network) OutputSize() int {
	if len(n.layers) == 0 {
		return n.inputSize
	}
	return n.layers[len(n.layers)-1].Size()
}

// CostFunction returns the cost tag fixed at build time.
func (n *Network) CostFunction() Cost {
	return n.cost
}

// Run forwards the datapoint's inputs through every layer in order and
// returns the derived label together with the raw output vector.
//
// As a side effect every neuron's memoized Output field is overwritten by
// the pass.
func (n *Network) Run(dp *data.Datapoint) (data.Label, []float64) {
	inputs := dp.Inputs()
	for _, layer := range n.layers {
		inputs = layer.Forward(inputs)
	}

	return data.LabelFrom(inputs), inputs
}

// Cost runs every datapoint in the dataset, applies the network's cost
// between outputs and the datapoint's one-hot target, and returns the
// average over the dataset size.
func (n *Network) Cost(dataset *data.Dataset) float64 {
	cost := 0.0
	for _, dp := range dataset.Datapoints() {
		_, outputs := n.Run(dp)
		cost += n.cost.Apply(outputs, dp.Targets())
	}

	return cost / float64(dataset.Size())
}

// Mutate delegates to every layer with the same alpha. Topology is
// unaffected; only weights and biases change.
func (n *Network) Mutate(alpha float64) {
	for _, layer := range n.layers {
		layer.Mutate(alpha)
	}
}
