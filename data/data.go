// Copyright 2026 Discern ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"image"

	"github.com/discern-ml/discern/internal/data"
)

// Label is the classification target of a datapoint.
type Label = data.Label

// Label tags. The one-hot arity of this set is the authoritative output
// width of a classification network.
const (
	Real = data.Real
	Fake = data.Fake
)

// Datapoint pairs a normalized input vector with its label.
type Datapoint = data.Datapoint

// Dataset is an ordered collection of datapoints.
type Dataset = data.Dataset

// NewDatapoint creates a datapoint from an input vector in [0, 1) and a
// label.
func NewDatapoint(inputs []float64, label Label) *Datapoint {
	return data.NewDatapoint(inputs, label)
}

// FromImage encodes a pixel buffer into a datapoint with the default Real
// label.
//
// Example:
//
//	f, _ := os.Open("test.png")
//	img, _, err := image.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dp := data.FromImage(img)
func FromImage(img image.Image) *Datapoint {
	return data.FromImage(img)
}

// LabelFrom derives a label from a two-element network output vector,
// breaking ties toward the earliest index.
func LabelFrom(outputs []float64) Label {
	return data.LabelFrom(outputs)
}

// NewDataset creates a dataset from the given datapoints.
func NewDataset(datapoints ...*Datapoint) *Dataset {
	return data.NewDataset(datapoints...)
}

// LoadDir decodes every image file in dir into a datapoint carrying the
// given label.
//
// Example:
//
//	real, err := data.LoadDir("dataset/real", data.Real)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fake, err := data.LoadDir("dataset/fake", data.Fake)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	real.Merge(fake)
func LoadDir(dir string, label Label) (*Dataset, error) {
	return data.LoadDir(dir, label)
}
