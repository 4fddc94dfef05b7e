// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wireless uses stablematch to assign network nodes to the
// access devices serving them.
package wireless

import (
	"github.com/someonegg/stablematch/netscore"
)

type Node struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type Device struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Pair records one node's outcome. Device is -1 when the node could not
// be served.
type Pair struct {
	Node   int `json:"node"`
	Device int `json:"device"`
}

type Plan struct {
	Pairs     []Pair `json:"pairs"`
	Proposals int    `json:"proposals"`
}

const (
	// Default population ranges used when the caller does not fix N
	// and U.
	MinNodes   = 2
	MaxNodes   = 20
	MaxDevices = 100
)

type Matcher struct {
	// Capacity is the number of nodes each device can hold; nil means 1.
	Capacity *int `json:"cap"`

	// Scorer ranks node/device pairs; nil means netscore.Euclidean.
	Scorer netscore.Scorer `json:"-"`

	Verbose bool `json:"vv"`

	cap    int
	scorer netscore.Scorer
}

type Summary struct {
	NodeCount   int `json:"nodes"`
	DeviceCount int `json:"devices"`
	Capacity    int `json:"cap"`
	Matched     int `json:"matched"`
	Unmatched   int `json:"unmatched"`
	Proposals   int `json:"proposals"`
}
