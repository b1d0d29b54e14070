// Copyright 2026 Discern ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/discern-ml/discern/internal/nn"
)

// Activation selects a layer's activation function.
type Activation = nn.Activation

// Activation tags. The set is closed: layers dispatch over exactly these.
const (
	Linear  = nn.Linear
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
	Softmax = nn.Softmax
)

// Cost selects the loss computed between outputs and one-hot targets.
type Cost = nn.Cost

// Cost tags.
const (
	MeanSquaredError        = nn.MeanSquaredError
	CategoricalCrossEntropy = nn.CategoricalCrossEntropy
)

// Neuron owns a weight vector and a bias.
type Neuron = nn.Neuron

// Layer is an ordered group of neurons sharing one input width and one
// activation function.
type Layer = nn.Layer

// Builder assembles a network while its topology is still mutable.
type Builder = nn.Builder

// Network is an evaluable feedforward network with frozen topology.
type Network = nn.Network

// Mutator is the genetic-search capability implemented by Neuron, Layer,
// and Network.
type Mutator = nn.Mutator

// NewNetwork starts building a network for input vectors of the given
// width.
//
// Example:
//
//	net := nn.NewNetwork(64 * 64 * 4).
//	    AddLayer(64, nn.Sigmoid).
//	    AddLayer(64, nn.Sigmoid).
//	    AddLayer(64, nn.Sigmoid).
//	    AddLayer(2, nn.Sigmoid).
//	    Build(nn.MeanSquaredError)
func NewNetwork(inputSize int) *Builder {
	return nn.NewNetwork(inputSize)
}

// Load reads a persisted network state from path.
//
// Example:
//
//	net, err := nn.Load("settings.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	label, outputs := net.Run(datapoint)
func Load(path string) (*Network, error) {
	return nn.Load(path)
}

// Seed reseeds the process-wide random source used for weight
// initialization and mutation, for reproducible runs.
func Seed(seed int64) {
	nn.Seed(seed)
}
