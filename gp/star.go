// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import "github.com/cpmech/gosl/utl"

// StarSystem builds the Star wirelength model (§4.4): one auxiliary
// variable per net, at index CellCount()+n, attracting every pin with a
// constant (non-B2B) force inversely proportional to the net's current
// half-width. Nets outside the size window, or with fewer than two pins,
// only get their auxiliary variable pinned to the diagonal so the system
// stays well-posed.
func StarSystem(nl *Netlist, pl *Placement, tol float64, minSize, maxSize int) *AxisSystems {
	dim := nl.CellCount() + nl.NetCount()
	nnz := estimateNNZ(nl, dim)
	x, y := buildEmptySystems(nl, pl, dim, nnz)

	for n := 0; n < nl.NetCount(); n++ {
		starIndex := nl.CellCount() + n
		cnt := nl.NetPinCount(n)
		if cnt < minSize || cnt >= maxSize {
			// Put a one in the intermediate variable to avoid a singular matrix.
			x.addTriplet(starIndex, starIndex, 1.0)
			y.addTriplet(starIndex, starIndex, 1.0)
			continue
		}
		starNet(pins1D(nl, pl, n, AxisX), x, tol, starIndex)
		starNet(pins1D(nl, pl, n, AxisY), y, tol, starIndex)
	}
	return &AxisSystems{X: x, Y: y}
}

// starNet adds one net's star contribution to one axis of the system.
func starNet(pins []pin1D, l *LinearSystem, tol float64, starIndex int) {
	if len(pins) < 2 {
		l.addTriplet(starIndex, starIndex, 1.0)
		return
	}
	minIdx, maxIdx := extremalIndices(pins)
	med := 0.5 * (pins[minIdx].pos + pins[maxIdx].pos)
	halfWidth := 0.5 * (pins[maxIdx].pos - pins[minIdx].pos)
	force := 1.0 / utl.Max(tol, halfWidth)

	star := pin1D{cell: starIndex, pos: med, offset: 0, movable: true}
	for _, p := range pins {
		// The Star model's force is not B2B-rescaled — see SPEC_FULL.md §4.4.
		addForce(l, p, star, force)
	}
}
