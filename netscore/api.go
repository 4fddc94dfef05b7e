// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package netscore scores node/device pairs by estimated link quality.
// Lower scores are better. Scorers are pure and safe for concurrent
// use.
package netscore

// Point is a planar position, unit of distance unspecified.
type Point struct {
	X float64
	Y float64
}

type Scorer interface {
	Score(node, device Point) float64
}
