package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanSquaredErrorZeroOnMatch(t *testing.T) {
	outputs := []float64{0.3, 0.7}
	assert.Equal(t, 0.0, MeanSquaredError.Apply(outputs, []float64{0.3, 0.7}))
}

func TestMeanSquaredErrorValue(t *testing.T) {
	// ((1-0.5)^2 + (0-0.5)^2) / 2 = 0.25
	got := MeanSquaredError.Apply([]float64{0.5, 0.5}, []float64{1, 0})
	assert.InDelta(t, 0.25, got, 1e-12)
}

// The empty tag defaults to MeanSquaredError, matching a persisted
// network with no cost recorded.
func TestEmptyCostDefaultsToMSE(t *testing.T) {
	got := Cost("").Apply([]float64{0.5, 0.5}, []float64{1, 0})
	assert.InDelta(t, 0.25, got, 1e-12)
}

func TestCrossEntropyResoftmaxesOutputs(t *testing.T) {
	outputs := []float64{2, -1}
	targets := []float64{1, 0}

	softened := Softmax.Apply(outputs)
	expected := -(targets[0]*math.Log(softened[0]) + targets[1]*math.Log(softened[1]))

	assert.InDelta(t, expected, CategoricalCrossEntropy.Apply(outputs, targets), 1e-12)
}

func TestCrossEntropyApproachesZeroWhenSaturated(t *testing.T) {
	// softmax([40, 0]) is numerically [~1, ~4e-18], so the loss on a
	// matching one-hot target vanishes.
	got := CategoricalCrossEntropy.Apply([]float64{40, 0}, []float64{1, 0})
	assert.InDelta(t, 0.0, got, 1e-10)
}

func TestCrossEntropyPenalizesWrongLabel(t *testing.T) {
	right := CategoricalCrossEntropy.Apply([]float64{4, 0}, []float64{1, 0})
	wrong := CategoricalCrossEntropy.Apply([]float64{4, 0}, []float64{0, 1})
	assert.Greater(t, wrong, right)
}

func TestCostLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		MeanSquaredError.Apply([]float64{1, 2, 3}, []float64{1, 2})
	})
	assert.Panics(t, func() {
		CategoricalCrossEntropy.Apply([]float64{1}, []float64{1, 0})
	})
}

func TestUnknownCostPanics(t *testing.T) {
	assert.Panics(t, func() {
		Cost("huber").Apply([]float64{1}, []float64{1})
	})
}
