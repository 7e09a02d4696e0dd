// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

// HPWLFSystem builds the "fully-connected" clique-star hybrid wirelength
// model (§4.2): for every net within [minSize, maxSize) pins, a star of
// B2B-weighted forces toward the minimum-position pin plus a second star
// toward the maximum-position pin, sharing the scale 1/(k-1) and never
// double-attracting the pin that happens to be both extrema.
func HPWLFSystem(nl *Netlist, pl *Placement, tol float64, minSize, maxSize int) *AxisSystems {
	dim := nl.CellCount()
	nnz := estimateNNZ(nl, dim)
	x, y := buildEmptySystems(nl, pl, dim, nnz)

	for n := 0; n < nl.NetCount(); n++ {
		cnt := nl.NetPinCount(n)
		if cnt < minSize || cnt >= maxSize {
			continue
		}
		hpwlfNet(pins1D(nl, pl, n, AxisX), x, tol)
		hpwlfNet(pins1D(nl, pl, n, AxisY), y, tol)
	}
	return &AxisSystems{X: x, Y: y}
}

// hpwlfNet adds one net's contribution to one axis of the system.
func hpwlfNet(pins []pin1D, l *LinearSystem, tol float64) {
	if len(pins) < 2 {
		return
	}
	minIdx, maxIdx := extremalIndices(pins)
	scale := 1.0 / float64(len(pins)-1)
	for i := range pins {
		if i == minIdx {
			continue
		}
		addForceB2B(l, pins[i], pins[minIdx], tol, scale)
		// Hopefully only one connection between the min and max pins. When
		// one pin is both extrema, the star toward it is added only once.
		if i != maxIdx && maxIdx != minIdx {
			addForceB2B(l, pins[i], pins[maxIdx], tol, scale)
		}
	}
}
