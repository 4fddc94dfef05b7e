// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netscore

import "math"

// Euclidean scores a pair by straight-line distance, the simplest
// proxy for received signal strength.
type Euclidean struct{}

func (Euclidean) Score(node, device Point) float64 {
	return math.Hypot(node.X-device.X, node.Y-device.Y)
}

const (
	// DefaultPathLossExponent suits open outdoor propagation; indoor
	// environments typically run 3-4.
	DefaultPathLossExponent = 2.0

	// refDistance keeps the log argument away from zero for nodes
	// sitting on top of a device.
	refDistance = 1e-3
)

// PathLoss scores a pair with the log-distance path-loss model:
// loss(d) = 10 * Exponent * log10(d / refDistance), in dB. Larger loss
// means weaker signal, so lower remains better.
type PathLoss struct {
	// Exponent is the propagation exponent; 0 means
	// DefaultPathLossExponent.
	Exponent float64
}

func (p PathLoss) Score(node, device Point) float64 {
	exp := p.Exponent
	if exp == 0 {
		exp = DefaultPathLossExponent
	}
	dist := math.Hypot(node.X-device.X, node.Y-device.Y)
	if dist < refDistance {
		dist = refDistance
	}
	return 10 * exp * math.Log10(dist/refDistance)
}
