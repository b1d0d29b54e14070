package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneHotEncoding(t *testing.T) {
	assert.Equal(t, []float64{1, 0}, Real.OneHot())
	assert.Equal(t, []float64{0, 1}, Fake.OneHot())
}

func TestLabelFrom(t *testing.T) {
	assert.Equal(t, Real, LabelFrom([]float64{0.9, 0.1}))
	assert.Equal(t, Fake, LabelFrom([]float64{0.2, 0.8}))
}

// Ties resolve to the earliest index, which maps to Real.
func TestLabelFromTieBreak(t *testing.T) {
	assert.Equal(t, Real, LabelFrom([]float64{0.5, 0.5}))
}

func TestLabelFromWrongCardinalityPanics(t *testing.T) {
	assert.Panics(t, func() {
		LabelFrom([]float64{0.2, 0.3, 0.5})
	})
	assert.Panics(t, func() {
		LabelFrom([]float64{1})
	})
	assert.Panics(t, func() {
		LabelFrom(nil)
	})
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "Real", Real.String())
	assert.Equal(t, "Fake", Fake.String())
}
