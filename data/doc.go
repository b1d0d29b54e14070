// Copyright 2026 Discern ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides the data model of the discern engine.
//
// # Overview
//
// This package contains:
//   - Label: the closed Real/Fake classification tags with their one-hot
//     encoding
//   - Datapoint: a normalized input vector plus label, with the pixel
//     codec and noise injection
//   - Dataset: an ordered datapoint collection with a directory loader
//
// # Pixel Codec
//
// FromImage flattens an RGBA pixel buffer row-major and channel
// interleaved, dividing each 8-bit channel by 256 so that every input
// lands in [0, 1). Datapoint.ToImage reverses the mapping for
// visualization, recovering near-square pixel dimensions from the vector
// length and truncating channels back to bytes.
//
// # Noise Injection
//
// Datapoint.AddNoise returns a perturbed copy whose inputs stay in
// [0, 1) before scaling, together with the raw noise vector applied. The
// original datapoint is never modified.
package data
