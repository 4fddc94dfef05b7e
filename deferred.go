// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
	"sort"
)

type deferredMatcher struct {
	capacity int
	verbose  bool

	// fifo switches the free-node pick order, exercised by tests to
	// check the returned assignment is order-independent.
	fifo bool
}

// DeferredMatcher returns a node-proposing deferred-acceptance matcher.
// capacity is the uniform number of nodes each device can hold;
// capacity 1 gives classical stable-marriage semantics.
func DeferredMatcher(capacity int, verbose bool) Matcher {
	return deferredMatcher{capacity: capacity, verbose: verbose}
}

func (m deferredMatcher) Match(nodePrefs, devicePrefs PreferenceTable) (Assignment, error) {
	if m.capacity < 1 {
		return Assignment{}, fmt.Errorf("%w: capacity %d", ErrInvalidConfig, m.capacity)
	}

	numNodes, numDevices := len(nodePrefs), len(devicePrefs)
	for n, prefs := range nodePrefs {
		if len(prefs) != numDevices {
			return Assignment{}, fmt.Errorf("%w: node %d ranks %d of %d devices", ErrInvalidConfig, n, len(prefs), numDevices)
		}
	}
	for d, prefs := range devicePrefs {
		if len(prefs) != numNodes {
			return Assignment{}, fmt.Errorf("%w: device %d ranks %d of %d nodes", ErrInvalidConfig, d, len(prefs), numNodes)
		}
	}

	// rank[d][n] is node n's position in device d's list, so "d prefers
	// a to b" is a single lookup during the replacement step.
	rank := make([][]int, numDevices)
	for d, prefs := range devicePrefs {
		rank[d] = make([]int, numNodes)
		for pos, n := range prefs {
			rank[d][n] = pos
		}
	}

	var (
		matched = make([]int, numNodes) // node -> device or Unmatched
		next    = make([]int, numNodes) // next list position to propose at
		holds   = make([][]int, numDevices)
		free    = make([]int, numNodes)
		count   = 0
	)
	for n := range matched {
		matched[n] = Unmatched
		free[n] = n
	}

	for len(free) > 0 {
		var n int
		if m.fifo {
			n, free = free[0], free[1:]
		} else {
			n, free = free[len(free)-1], free[:len(free)-1]
		}

		// n proposes down its list from where it left off. A rejection
		// eliminates the pair permanently, so each node visits each
		// device at most once and the loop makes at most N*U proposals
		// overall.
		for next[n] < numDevices {
			d := nodePrefs[n][next[n]]
			next[n]++
			count++

			if len(holds[d]) < m.capacity {
				holds[d] = append(holds[d], n)
				matched[n] = d
				if m.verbose {
					fmt.Println("node", n, "-> device", d, "accepted")
				}
				break
			}

			w := worstHeld(holds[d], rank[d])
			if rank[d][n] < rank[d][w] {
				replaceHeld(holds[d], w, n) // w resumes from where it left off
				matched[n] = d
				matched[w] = Unmatched
				free = append(free, w)
				if m.verbose {
					fmt.Println("node", n, "-> device", d, "displaces node", w)
				}
				break
			}

			if m.verbose {
				fmt.Println("node", n, "-> device", d, "rejected")
			}
		}
	}

	for d := range holds {
		sort.Ints(holds[d])
	}

	return Assignment{
		NodeDevice:  matched,
		DeviceNodes: holds,
		Proposals:   count,
	}, nil
}

// worstHeld returns the held node the device likes least. held is never
// empty when called.
func worstHeld(held []int, rank []int) int {
	worst := held[0]
	for _, n := range held[1:] {
		if rank[n] > rank[worst] {
			worst = n
		}
	}
	return worst
}

func replaceHeld(held []int, out, in int) {
	for i, n := range held {
		if n == out {
			held[i] = in
			return
		}
	}
}
