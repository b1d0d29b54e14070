// Package evolve implements evolutionary parameter search over discern
// networks, using mutation as the variation operator and dataset cost as
// the fitness function.
//
// The engine deliberately leaves gradient-based training out; this
// package is the non-gradient outer loop built from the primitives it
// does provide: Clone, Mutate, and Cost.
package evolve

import (
	"github.com/pkg/errors"

	"github.com/discern-ml/discern/internal/data"
	"github.com/discern-ml/discern/internal/nn"
)

// Options controls a search run.
type Options struct {
	// Population is the number of mutated candidates per generation.
	Population int
	// Generations is the number of selection rounds.
	Generations int
	// Alpha scales the mutation noise applied to each candidate.
	Alpha float64
}

// Result reports the outcome of a search.
type Result struct {
	// Best is the lowest-cost network found, including the seed network
	// if no candidate beat it.
	Best *nn.Network
	// Cost is Best's average cost over the dataset.
	Cost float64
	// Improved counts the generations in which a candidate replaced the
	// incumbent.
	Improved int
}

// Search runs a hill-climbing evolutionary loop.
//
// Each generation clones the incumbent Population times, mutates every
// clone with Alpha, evaluates all candidates against the dataset, and
// keeps the cheapest candidate if it beats the incumbent. The seed
// network is never modified; callers get back an independent network.
func Search(seed *nn.Network, dataset *data.Dataset, opts Options) (*Result, error) {
	if opts.Population <= 0 {
		return nil, errors.Errorf("population must be positive, got %d", opts.Population)
	}
	if opts.Generations < 0 {
		return nil, errors.Errorf("generations must not be negative, got %d", opts.Generations)
	}
	if dataset.Size() == 0 {
		return nil, errors.New("cannot search against an empty dataset")
	}

	best := seed.Clone()
	bestCost := best.Cost(dataset)
	improved := 0

	for generation := 0; generation < opts.Generations; generation++ {
		candidate, candidateCost := bestMutation(best, dataset, opts)
		if candidateCost < bestCost {
			best, bestCost = candidate, candidateCost
			improved++
		}
	}

	return &Result{Best: best, Cost: bestCost, Improved: improved}, nil
}

// bestMutation evaluates one generation and returns its cheapest candidate.
func bestMutation(incumbent *nn.Network, dataset *data.Dataset, opts Options) (*nn.Network, float64) {
	var best *nn.Network
	bestCost := 0.0

	for i := 0; i < opts.Population; i++ {
		candidate := incumbent.Clone()
		candidate.Mutate(opts.Alpha)

		cost := candidate.Cost(dataset)
		if best == nil || cost < bestCost {
			best, bestCost = candidate, cost
		}
	}

	return best, bestCost
}
