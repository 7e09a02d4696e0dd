// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

// AxisSystems pairs the two per-axis linear systems a wirelength model or
// anchor builder produces. The two systems are fully independent (§4.5,
// §5): neither reads nor writes the other's state.
type AxisSystems struct {
	X, Y *LinearSystem
}

// extremalIndices returns the indices of the minimum- and maximum-position
// pins in pins, breaking ties by first occurrence (the recommended,
// documented choice for the Open Question in spec.md §9 — see DESIGN.md).
func extremalIndices(pins []pin1D) (minIdx, maxIdx int) {
	for i, p := range pins {
		if p.pos < pins[minIdx].pos {
			minIdx = i
		}
		if p.pos > pins[maxIdx].pos {
			maxIdx = i
		}
	}
	return minIdx, maxIdx
}
