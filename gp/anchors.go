// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// PullingForces builds the uniform-pull anchor (§4.6): every cell is pulled
// toward its current position in pl with a constant force of
// 1/typicalDistance, used to keep coordinates near a reference while another
// force field dominates.
func PullingForces(nl *Netlist, pl *Placement, typicalDistance float64) *AxisSystems {
	dim := nl.CellCount()
	x, y := buildEmptySystems(nl, pl, dim, estimateNNZ(nl, dim))
	typicalForce := 1.0 / typicalDistance
	for i := 0; i < nl.CellCount(); i++ {
		x.AddAnchor(typicalForce, i, pl.Positions[i].X)
		y.AddAnchor(typicalForce, i, pl.Positions[i].Y)
	}
	return &AxisSystems{X: x, Y: y}
}

// LinearPullingForces builds the B2B-pull anchor (§4.6): the outer
// Majorization-Minimization step that majorizes the linear L1 disruption
// penalty between an upper-bound placement ub and a lower-bound placement lb
// with a quadratic term around ub, weighted by each cell's area relative to
// the netlist's mean cell area.
func LinearPullingForces(nl *Netlist, ub, lb *Placement, force, minDistance float64) (*AxisSystems, error) {
	if ub.CellCount() != lb.CellCount() {
		return nil, chk.Err("LinearPullingForces: placement cell counts differ (%d vs %d)", ub.CellCount(), lb.CellCount())
	}
	dim := nl.CellCount()
	x, y := buildEmptySystems(nl, ub, dim, estimateNNZ(nl, dim))
	scale := areaScales(nl)
	for i := 0; i < nl.CellCount(); i++ {
		wx := force * scale[i] / utl.Max(math.Abs(ub.Positions[i].X-lb.Positions[i].X), minDistance)
		wy := force * scale[i] / utl.Max(math.Abs(ub.Positions[i].Y-lb.Positions[i].Y), minDistance)
		x.AddAnchor(wx, i, ub.Positions[i].X)
		y.AddAnchor(wy, i, ub.Positions[i].Y)
	}
	return &AxisSystems{X: x, Y: y}, nil
}

// areaScales returns each cell's area normalized by the netlist's mean cell
// area, used to scale pulling forces so large and small cells receive
// comparable displacement penalties (original_source/circuit.cxx's
// get_area_scales — see SPEC_FULL.md §11).
func areaScales(nl *Netlist) []float64 {
	nc := nl.CellCount()
	out := make([]float64, nc)
	var total int64
	for i := 0; i < nc; i++ {
		out[i] = float64(nl.cellAreas[i])
		total += nl.cellAreas[i]
	}
	avg := float64(total) / float64(nc)
	for i := range out {
		out[i] /= avg
	}
	return out
}
