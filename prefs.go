// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
	"sort"
)

// MetricFunc scores a node/device pair, lower is better. It must be
// total over [0,N)x[0,U) and stable for the duration of a run.
type MetricFunc func(node, device int) float64

// BuildPreferences computes the two rank tables deferred acceptance
// consumes: one ranking of all devices per node and one ranking of all
// nodes per device, each sorted ascending by metric with ties broken by
// ascending id. The caller's state is never touched.
func BuildPreferences(numNodes, numDevices int, metric MetricFunc) (nodePrefs, devicePrefs PreferenceTable, err error) {
	if numNodes < 0 || numDevices < 0 {
		return nil, nil, fmt.Errorf("%w: negative population N=%d U=%d", ErrInvalidConfig, numNodes, numDevices)
	}
	if metric == nil {
		return nil, nil, fmt.Errorf("%w: nil metric", ErrInvalidConfig)
	}

	nodePrefs = make(PreferenceTable, numNodes)
	for n := 0; n < numNodes; n++ {
		nodePrefs[n] = rankedIDs(numDevices, func(d int) float64 { return metric(n, d) })
	}

	devicePrefs = make(PreferenceTable, numDevices)
	for d := 0; d < numDevices; d++ {
		devicePrefs[d] = rankedIDs(numNodes, func(n int) float64 { return metric(n, d) })
	}

	return nodePrefs, devicePrefs, nil
}

// rankedIDs returns 0..count-1 sorted ascending by score. The input
// order is ascending id, so the stable sort settles ties by id.
func rankedIDs(count int, score func(id int) float64) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return score(ids[i]) < score(ids[j])
	})
	return ids
}
