// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import "sort"

// HPWLRSystem builds the "reduced" bounding-edge chain wirelength model
// (§4.3): pins of each net within [minSize, maxSize) are sorted along the
// axis and a unit-scale B2B force is added between each consecutive pair.
func HPWLRSystem(nl *Netlist, pl *Placement, tol float64, minSize, maxSize int) *AxisSystems {
	dim := nl.CellCount()
	nnz := estimateNNZ(nl, dim)
	x, y := buildEmptySystems(nl, pl, dim, nnz)

	for n := 0; n < nl.NetCount(); n++ {
		cnt := nl.NetPinCount(n)
		if cnt < minSize || cnt >= maxSize {
			continue
		}
		hpwlrNet(pins1D(nl, pl, n, AxisX), x, tol)
		hpwlrNet(pins1D(nl, pl, n, AxisY), y, tol)
	}
	return &AxisSystems{X: x, Y: y}
}

// hpwlrNet sorts pins along the axis (stably, so ties keep their storage
// order — §5) and chains consecutive pairs with a B2B force.
func hpwlrNet(pins []pin1D, l *LinearSystem, tol float64) {
	sorted := make([]pin1D, len(pins))
	copy(sorted, pins)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].pos < sorted[j].pos })
	for i := 0; i+1 < len(sorted); i++ {
		addForceB2B(l, sorted[i], sorted[i+1], tol, 1.0)
	}
}
