// Copyright 2026 Discern ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the discern feedforward network engine.
//
// # Overview
//
// This package contains:
//   - Builder / Network: typed construction and evaluation phases
//   - Activations: Linear, ReLU, Sigmoid, Softmax
//   - Cost functions: MeanSquaredError, CategoricalCrossEntropy
//   - Mutator: in-place genetic perturbation of weights and biases
//   - JSON persistence: Network.Save and Load
//
// # Basic Usage
//
//	import (
//	    "github.com/discern-ml/discern/data"
//	    "github.com/discern-ml/discern/nn"
//	)
//
//	func main() {
//	    net := nn.NewNetwork(64 * 64 * 4).
//	        AddLayer(64, nn.Sigmoid).
//	        AddLayer(64, nn.Sigmoid).
//	        AddLayer(64, nn.Sigmoid).
//	        AddLayer(2, nn.Sigmoid).
//	        Build(nn.MeanSquaredError)
//
//	    label, outputs := net.Run(datapoint)
//	    fmt.Printf("Label: %v, Outputs: %v\n", label, outputs)
//	}
//
// # Construction and Freezing
//
// A Builder keeps the topology mutable. Each AddLayer derives the new
// layer's input width from the current output width, so adjacent layers
// are compatible by construction. Build fixes the cost function and
// returns a Network, which exposes no layer-mutating operation: once
// frozen, only evaluation, mutation, and persistence remain.
//
// # Fitness and Mutation
//
// Network.Cost averages the configured loss over a dataset, and
// Network.Mutate perturbs every weight and bias in place. Together with
// Network.Clone they form the primitives of a non-gradient search loop;
// see the evolve package.
//
// # Persistence
//
//	if err := net.Save("settings.json"); err != nil {
//	    log.Fatal(err)
//	}
//	restored, err := nn.Load("settings.json")
//
// A save/load round-trip reproduces layer order, weights, biases, and
// activation and cost tags bit for bit.
package nn
