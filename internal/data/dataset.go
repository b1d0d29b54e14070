package data

import (
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	// Register the image formats the directory loader understands.
	_ "image/jpeg"
	_ "image/png"
)

// Dataset is an ordered collection of datapoints. There is no deduplication
// or indexing; evaluation simply iterates in insertion order.
type Dataset struct {
	datapoints []*Datapoint
}

// NewDataset creates a dataset from the given datapoints.
func NewDataset(datapoints ...*Datapoint) *Dataset {
	return &Dataset{datapoints: datapoints}
}

// Datapoints returns the datapoints in insertion order.
func (d *Dataset) Datapoints() []*Datapoint {
	return d.datapoints
}

// Size returns the number of datapoints.
func (d *Dataset) Size() int {
	return len(d.datapoints)
}

// Add appends a datapoint.
func (d *Dataset) Add(dp *Datapoint) {
	d.datapoints = append(d.datapoints, dp)
}

// Merge appends every datapoint of other, preserving order.
func (d *Dataset) Merge(other *Dataset) {
	d.datapoints = append(d.datapoints, other.datapoints...)
}

// LoadDir decodes every image file in dir into a datapoint carrying the
// given label and returns them as a dataset, in lexical file order.
//
// Subdirectories are skipped. A file that cannot be opened or decoded
// aborts the load; a partially read directory is never returned.
func LoadDir(dir string, label Label) (*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset directory %s", dir)
	}

	dataset := NewDataset()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		img, err := decodeImage(path)
		if err != nil {
			return nil, err
		}

		dp := FromImage(img)
		dp.label = label
		dataset.Add(dp)
	}

	return dataset, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}
	return img, nil
}
