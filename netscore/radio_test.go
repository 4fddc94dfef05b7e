// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	cases := []struct {
		name   string
		node   Point
		device Point
		want   float64
	}{
		{"Coincident", Point{0, 0}, Point{0, 0}, 0},
		{"UnitX", Point{0, 0}, Point{1, 0}, 1},
		{"Diagonal345", Point{0, 0}, Point{3, 4}, 5},
		{"Symmetric", Point{3, 4}, Point{0, 0}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Euclidean{}.Score(c.node, c.device), 1e-12)
		})
	}
}

func TestPathLoss(t *testing.T) {
	t.Run("MonotoneInDistance", func(t *testing.T) {
		p := PathLoss{}
		near := p.Score(Point{0, 0}, Point{0.1, 0})
		far := p.Score(Point{0, 0}, Point{0.9, 0})
		require.Less(t, near, far)
	})

	t.Run("DefaultExponent", func(t *testing.T) {
		// At d = 10*refDistance the loss is 10*exp*1 dB.
		got := PathLoss{}.Score(Point{0, 0}, Point{10 * refDistance, 0})
		assert.InDelta(t, 10*DefaultPathLossExponent, got, 1e-9)
	})

	t.Run("SteeperExponentLosesMore", func(t *testing.T) {
		node, device := Point{0, 0}, Point{0.5, 0.5}
		open := PathLoss{Exponent: 2}.Score(node, device)
		indoor := PathLoss{Exponent: 4}.Score(node, device)
		require.Greater(t, indoor, open)
	})

	t.Run("CoincidentFinite", func(t *testing.T) {
		got := PathLoss{}.Score(Point{0.5, 0.5}, Point{0.5, 0.5})
		require.False(t, got < 0)
		assert.InDelta(t, 0, got, 1e-9)
	})
}
