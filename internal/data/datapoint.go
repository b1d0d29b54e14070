package data

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/discern-ml/discern/internal/rng"
)

// channelCount is the number of channels carried per pixel (RGBA).
const channelCount = 4

// Datapoint pairs an input vector with its classification label.
//
// Inputs are normalized pixel channels in [0, 1). A datapoint is immutable
// once created: AddNoise returns a perturbed copy rather than mutating in
// place.
type Datapoint struct {
	inputs []float64
	label  Label
}

// NewDatapoint creates a datapoint from an input vector and a label.
func NewDatapoint(inputs []float64, label Label) *Datapoint {
	return &Datapoint{inputs: inputs, label: label}
}

// FromImage encodes a pixel buffer into a datapoint.
//
// Pixels are read in row-major order; each RGBA channel is divided by 256,
// producing a flat channel-interleaved vector of length width*height*4 with
// every entry in [0, 1). Labeling is the caller's responsibility, so the
// label defaults to Real.
func FromImage(img image.Image) *Datapoint {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	inputs := make([]float64, 0, width*height*channelCount)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			inputs = append(inputs,
				float64(px.R)/256,
				float64(px.G)/256,
				float64(px.B)/256,
				float64(px.A)/256,
			)
		}
	}

	return &Datapoint{inputs: inputs, label: Real}
}

// Inputs returns the input vector. The slice is owned by the datapoint and
// must not be modified.
func (d *Datapoint) Inputs() []float64 {
	return d.inputs
}

// Label returns the classification label.
func (d *Datapoint) Label() Label {
	return d.label
}

// Targets returns the one-hot training target for this datapoint's label.
func (d *Datapoint) Targets() []float64 {
	return d.label.OneHot()
}

// AddNoise returns a copy of the datapoint with every input perturbed, plus
// the raw noise vector that was applied. The receiver is left untouched.
//
// For an input value v the perturbation is drawn uniformly from [-v, 1-v),
// which keeps v+noise inside [0, 1) before scaling, then multiplied by
// alpha.
func (d *Datapoint) AddNoise(alpha float64) (*Datapoint, []float64) {
	noise := make([]float64, len(d.inputs))
	perturbed := make([]float64, len(d.inputs))

	for i, input := range d.inputs {
		noise[i] = rng.Between(-input, 1-input) * alpha
		perturbed[i] = input + noise[i]
	}

	return &Datapoint{inputs: perturbed, label: d.label}, noise
}

// ToImage decodes the input vector back into a pixel buffer, used for
// visualization and debugging.
//
// The vector length must be a positive multiple of 4. Pixel dimensions are
// recovered by searching for the width*height factorization of len/4
// closest to a square: starting from floor and ceil of the square root, the
// height shrinks or the width grows until the product matches. The search
// is deterministic and terminates for every positive length. Channels are
// scaled from [0, 1) back to bytes by truncation.
func (d *Datapoint) ToImage() *image.NRGBA {
	if len(d.inputs) == 0 || len(d.inputs)%channelCount != 0 {
		panic(fmt.Sprintf("data: ToImage requires a positive multiple of %d inputs, got %d", channelCount, len(d.inputs)))
	}

	length := len(d.inputs) / channelCount
	root := math.Sqrt(float64(length))
	width, height := int(math.Floor(root)), int(math.Ceil(root))

	for width*height != length {
		if width*height > length {
			height--
		} else {
			width++
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := (x + y*width) * channelCount
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(d.inputs[index] * 255),
				G: uint8(d.inputs[index+1] * 255),
				B: uint8(d.inputs[index+2] * 255),
				A: uint8(d.inputs[index+3] * 255),
			})
		}
	}

	return img
}
