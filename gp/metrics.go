// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// HPWLWirelength returns the sum over all nets of the bounding-box
// perimeter half (§4.8, §2 glossary HPWL). Nets with no pins contribute
// nothing.
func HPWLWirelength(nl *Netlist, pl *Placement) float64 {
	sum := 0.0
	for n := 0; n < nl.NetCount(); n++ {
		pins := pins2D(nl, pl, n)
		if len(pins) == 0 {
			continue
		}
		xmin, xmax := pins[0].pos.X, pins[0].pos.X
		ymin, ymax := pins[0].pos.Y, pins[0].pos.Y
		for _, p := range pins[1:] {
			xmin = utl.Min(xmin, p.pos.X)
			xmax = utl.Max(xmax, p.pos.X)
			ymin = utl.Min(ymin, p.pos.Y)
			ymax = utl.Max(ymax, p.pos.Y)
		}
		sum += (xmax - xmin) + (ymax - ymin)
	}
	return sum
}

// MeanLinearDisruption returns the area-weighted mean Manhattan displacement
// between two placements of the same netlist (§4.8).
func MeanLinearDisruption(nl *Netlist, lb, ub *Placement) float64 {
	totCost, totArea := 0.0, 0.0
	for i := 0; i < nl.CellCount(); i++ {
		area := float64(nl.cellAreas[i])
		dx := lb.Positions[i].X - ub.Positions[i].X
		dy := lb.Positions[i].Y - ub.Positions[i].Y
		totCost += area * (math.Abs(dx) + math.Abs(dy))
		totArea += area
	}
	return totCost / totArea
}

// MeanQuadraticDisruption returns the square root of the area-weighted mean
// squared Manhattan displacement between two placements (§4.8).
func MeanQuadraticDisruption(nl *Netlist, lb, ub *Placement) float64 {
	totCost, totArea := 0.0, 0.0
	for i := 0; i < nl.CellCount(); i++ {
		area := float64(nl.cellAreas[i])
		dx := lb.Positions[i].X - ub.Positions[i].X
		dy := lb.Positions[i].Y - ub.Positions[i].Y
		manhattan := math.Abs(dx) + math.Abs(dy)
		totCost += area * manhattan * manhattan
		totArea += area
	}
	return math.Sqrt(totCost / totArea)
}
