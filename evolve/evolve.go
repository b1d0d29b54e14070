// Copyright 2026 Discern ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package evolve provides evolutionary parameter search over discern
// networks.
//
// # Overview
//
// Search runs a hill-climbing loop: each generation clones the incumbent
// network, mutates the clones, scores them against a dataset with the
// network's cost function, and keeps the cheapest candidate when it beats
// the incumbent.
//
// # Basic Usage
//
//	import (
//	    "github.com/discern-ml/discern/evolve"
//	    "github.com/discern-ml/discern/nn"
//	)
//
//	func main() {
//	    net := nn.NewNetwork(16).
//	        AddLayer(8, nn.Sigmoid).
//	        AddLayer(2, nn.Softmax).
//	        Build(nn.CategoricalCrossEntropy)
//
//	    result, err := evolve.Search(net, dataset, evolve.Options{
//	        Population:  32,
//	        Generations: 100,
//	        Alpha:       0.1,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("cost %.6f after %d improvements\n", result.Cost, result.Improved)
//	}
package evolve

import (
	"github.com/discern-ml/discern/internal/data"
	"github.com/discern-ml/discern/internal/evolve"
	"github.com/discern-ml/discern/internal/nn"
)

// Options controls a search run.
type Options = evolve.Options

// Result reports the outcome of a search.
type Result = evolve.Result

// Search runs a hill-climbing evolutionary loop seeded with the given
// network. The seed is never modified.
func Search(seed *nn.Network, dataset *data.Dataset, opts Options) (*Result, error) {
	return evolve.Search(seed, dataset, opts)
}
