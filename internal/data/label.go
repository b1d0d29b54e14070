// Package data implements the data model consumed by the discern engine:
// classification labels, datapoints with their pixel-vector codec, and
// ordered datasets.
package data

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Label is the classification target of a datapoint. The set is closed:
// a network built for this data model always has exactly two outputs.
type Label int

const (
	// Real marks an authentic image.
	Real Label = iota
	// Fake marks a generated or manipulated image.
	Fake

	labelCount = 2
)

// String returns the display name of the label.
func (l Label) String() string {
	switch l {
	case Real:
		return "Real"
	case Fake:
		return "Fake"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// OneHot returns the label encoded as a training target vector.
//
// Real encodes to [1, 0] and Fake to [0, 1]. The length of this encoding
// is the authoritative output width of a classification network.
func (l Label) OneHot() []float64 {
	switch l {
	case Real:
		return []float64{1, 0}
	case Fake:
		return []float64{0, 1}
	default:
		panic(fmt.Sprintf("data: cannot one-hot encode %v", l))
	}
}

// LabelFrom derives a label from a network output vector.
//
// The vector length must equal the label cardinality; anything else is a
// construction bug and panics. The winning index is found by a strict
// greater-than scan, so ties resolve to the earliest index: index 0 maps
// to Real, every other index to Fake.
func LabelFrom(outputs []float64) Label {
	if len(outputs) != labelCount {
		panic(fmt.Sprintf("data: LabelFrom expects %d outputs, got %d", labelCount, len(outputs)))
	}

	if floats.MaxIdx(outputs) == 0 {
		return Real
	}
	return Fake
}
