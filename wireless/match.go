// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wireless

import (
	"fmt"
	"math/rand"

	"github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/netscore"
)

func (m *Matcher) init() {
	if m.Capacity == nil {
		m.cap = 1
	} else {
		m.cap = *m.Capacity
	}

	if m.Scorer == nil {
		m.scorer = netscore.Euclidean{}
	} else {
		m.scorer = m.Scorer
	}
}

// Match ranks every node/device pair with the configured scorer and
// runs deferred acceptance over the resulting preference tables. Pairs
// come back in node order; nodes that exhausted every device report
// Device -1.
func (m *Matcher) Match(nodes []Node, devices []Device) (Plan, Summary, error) {
	m.init()

	metric := func(n, d int) float64 {
		return m.scorer.Score(
			netscore.Point{X: nodes[n].X, Y: nodes[n].Y},
			netscore.Point{X: devices[d].X, Y: devices[d].Y})
	}

	nodePrefs, devicePrefs, err := stablematch.BuildPreferences(len(nodes), len(devices), metric)
	if err != nil {
		return Plan{}, Summary{}, fmt.Errorf("build preferences: %w", err)
	}

	assignment, err := stablematch.DeferredMatcher(m.cap, m.Verbose).Match(nodePrefs, devicePrefs)
	if err != nil {
		return Plan{}, Summary{}, fmt.Errorf("match: %w", err)
	}

	plan := Plan{
		Pairs:     make([]Pair, len(nodes)),
		Proposals: assignment.Proposals,
	}
	summ := Summary{
		NodeCount:   len(nodes),
		DeviceCount: len(devices),
		Capacity:    m.cap,
		Proposals:   assignment.Proposals,
	}

	for n, d := range assignment.NodeDevice {
		pair := Pair{Node: nodes[n].ID, Device: -1}
		if d != stablematch.Unmatched {
			pair.Device = devices[d].ID
			summ.Matched++
		} else {
			summ.Unmatched++
		}
		plan.Pairs[n] = pair
	}

	if m.Verbose {
		fmt.Printf("nodes: %v, devices: %v, matched: %v, unmatched: %v, proposals: %v\n",
			summ.NodeCount, summ.DeviceCount, summ.Matched, summ.Unmatched, summ.Proposals)
	}

	return plan, summ, nil
}

// RandomPopulation draws default population sizes the way the classic
// assignment does: N uniform in [MinNodes, MaxNodes], U uniform in
// [max(N, MinNodes), MaxDevices].
func RandomPopulation(rng *rand.Rand) (numNodes, numDevices int) {
	numNodes = MinNodes + rng.Intn(MaxNodes-MinNodes+1)
	numDevices = numNodes + rng.Intn(MaxDevices-numNodes+1)
	return numNodes, numDevices
}

// GenTopology scatters numNodes nodes and numDevices devices uniformly
// over the unit square, ids assigned in order.
func GenTopology(numNodes, numDevices int, rng *rand.Rand) ([]Node, []Device) {
	nodes := make([]Node, numNodes)
	for i := range nodes {
		nodes[i] = Node{ID: i, X: rng.Float64(), Y: rng.Float64()}
	}
	devices := make([]Device, numDevices)
	for i := range devices {
		devices[i] = Device{ID: i, X: rng.Float64(), Y: rng.Float64()}
	}
	return nodes, devices
}
