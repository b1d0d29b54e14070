package nn

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// networkState is the persisted form of a network: topology, parameters,
// and the activation and cost tags. Weights and biases are float64 and
// encoding/json emits the shortest representation that round-trips
// exactly, so a save/load cycle reproduces them bit for bit.
type networkState struct {
	InputSize int      `json:"input_size"`
	Layers    []*Layer `json:"layers"`
	Cost      Cost     `json:"cost"`
}

// MarshalJSON encodes the full network state.
func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(networkState{
		InputSize: n.inputSize,
		Layers:    n.layers,
		Cost:      n.cost,
	})
}

// UnmarshalJSON decodes a network state and validates its topology: layer
// input widths must chain from the network input width through each
// layer's size. A file that fails validation is rejected whole; no partial
// network is ever produced.
func (n *Network) UnmarshalJSON(contents []byte) error {
	var state networkState
	if err := json.Unmarshal(contents, &state); err != nil {
		return errors.Wrap(err, "malformed network state")
	}

	width := state.InputSize
	for i, layer := range state.Layers {
		for _, neuron := range layer.Neurons {
			if len(neuron.Weights) != width {
				return errors.Errorf("layer %d expects input width %d, found a neuron with %d weights", i, width, len(neuron.Weights))
			}
		}
		width = layer.Size()
	}

	n.inputSize = state.InputSize
	n.layers = state.Layers
	n.cost = state.Cost
	return nil
}

// Save writes the network state to path as JSON.
func (n *Network) Save(path string) error {
	contents, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "failed to serialize network")
	}

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write network to %s", path)
	}
	return nil
}

// Load reads a network state from path. A missing or corrupt file means
// the network cannot be constructed; there is no partial recovery.
func Load(path string) (*Network, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read network from %s", path)
	}

	net := &Network{}
	if err := json.Unmarshal(contents, net); err != nil {
		return nil, errors.Wrapf(err, "failed to load network from %s", path)
	}
	return net, nil
}

// Clone returns an independent deep copy of the network by round-tripping
// its state through the persisted form. The copy shares no layers or
// neurons with the receiver, so mutating one never affects the other.
func (n *Network) Clone() *Network {
	contents, err := json.Marshal(n)
	if err != nil {
		panic(errors.Wrap(err, "nn: failed to clone network"))
	}

	clone := &Network{}
	if err := json.Unmarshal(contents, clone); err != nil {
		panic(errors.Wrap(err, "nn: failed to clone network"))
	}
	return clone
}
