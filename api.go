// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stablematch computes stable assignments between network nodes
// and the devices serving them, using deferred acceptance.
package stablematch

import "errors"

// ErrInvalidConfig reports a configuration the matcher cannot run with:
// negative population sizes, non-positive device capacity, or preference
// tables whose rows are not permutations of the opposite population.
var ErrInvalidConfig = errors.New("stablematch: invalid configuration")

// Unmatched marks a node that exhausted its preference list without
// being held by any device. Possible only when N > U*capacity.
const Unmatched = -1

// PreferenceTable holds one ranking per participant. Row i lists the
// ids of the opposite population ordered from most to least preferred,
// and must be a permutation of that whole population.
type PreferenceTable [][]int

type Matcher interface {
	Match(nodePrefs, devicePrefs PreferenceTable) (Assignment, error)
}

// Assignment is the final outcome of a run. It is immutable once
// returned.
type Assignment struct {
	// NodeDevice maps node id to device id, or Unmatched.
	NodeDevice []int
	// DeviceNodes maps device id to the node ids it holds, ascending.
	DeviceNodes [][]int
	// Proposals counts proposal attempts made during the run.
	Proposals int
}

// Size returns the populations the assignment was computed over.
func (a Assignment) Size() (nodes, devices int) {
	return len(a.NodeDevice), len(a.DeviceNodes)
}

// UnmatchedNodes returns the ids of nodes left without a device,
// ascending.
func (a Assignment) UnmatchedNodes() []int {
	var ids []int
	for n, d := range a.NodeDevice {
		if d == Unmatched {
			ids = append(ids, n)
		}
	}
	return ids
}
