// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// MovableCell is one cell handed to a RoughLegalizer: its identity, area and
// the analytical placement's (possibly overlapping) position for it. Movable
// cells carry area rather than a fixed width/height — a spreading legalizer
// is free to reshape them, so only their area is a real constraint
// (original_source/circuit.cxx's region_distribution::movable_cell(C.area,
// ...) — see SPEC_FULL.md §11).
type MovableCell struct {
	Index    int
	Area     int64
	Position Point[float64]
}

// FixedCell is an obstacle a RoughLegalizer must route movable cells around.
type FixedCell struct {
	Index    int
	Size     Point[int]
	Position Point[float64]
}

// LegalizedCell is one movable cell's non-overlapping position, as returned
// by a RoughLegalizer.
type LegalizedCell struct {
	Index    int
	Position Point[float64]
}

// RoughLegalizer spreads movable cells into non-overlapping positions around
// a fixed set of obstacles. It is the external collaborator named in the
// spec's §6 rough-legalizer contract: the CORE only calls Distribute through
// this interface and never inspects how overlap is actually resolved.
type RoughLegalizer interface {
	Distribute(movable []MovableCell, fixed []FixedCell) []LegalizedCell
}

// IdentityLegalizer is a trivial RoughLegalizer that performs no spreading:
// it returns each movable cell's input position, clipped so the cell's
// footprint stays inside Surface. A real spreading algorithm (bin-packing,
// Tetris-style row legalization, etc.) is out of scope for this repository —
// see SPEC_FULL.md §4.11 — and this default exists so the CORE's
// prepare/solve/legalize loop is runnable end to end without one.
type IdentityLegalizer struct {
	Surface Box[int]
}

// Distribute implements RoughLegalizer.
func (l IdentityLegalizer) Distribute(movable []MovableCell, fixed []FixedCell) []LegalizedCell {
	out := make([]LegalizedCell, len(movable))
	for i, m := range movable {
		side := math.Sqrt(float64(m.Area))
		halfExtent := Point[float64]{X: side / 2, Y: side / 2}
		out[i] = LegalizedCell{
			Index:    m.Index,
			Position: clipToSurface(m.Position, halfExtent, l.Surface),
		}
	}
	return out
}

// clipToSurface moves pos so a footprint of the given half-width/half-height
// stays within surface, measuring the cell's footprint from its center
// (matching the rest of the CORE, which treats cell position as a center
// point).
func clipToSurface(pos, halfExtent Point[float64], surface Box[int]) Point[float64] {
	xmin, xmax := float64(surface.XMin)+halfExtent.X, float64(surface.XMax)-halfExtent.X
	ymin, ymax := float64(surface.YMin)+halfExtent.Y, float64(surface.YMax)-halfExtent.Y
	x := utl.Min(utl.Max(pos.X, xmin), utl.Max(xmin, xmax))
	y := utl.Min(utl.Max(pos.Y, ymin), utl.Max(ymin, ymax))
	return Point[float64]{X: x, Y: y}
}

// PrepareLegalization turns a Netlist and its current Placement into the
// movable/fixed cell lists a RoughLegalizer expects (original_source/
// circuit.cxx's get_rough_legalizer — see SPEC_FULL.md §11). A cell counts as
// movable if it is movable on either axis; a cell fixed on both axes is an
// obstacle.
func PrepareLegalization(nl *Netlist, pl *Placement) (movable []MovableCell, fixed []FixedCell) {
	for i := 0; i < nl.CellCount(); i++ {
		c := nl.Cell(i)
		if c.Attributes.Movable(AxisX) || c.Attributes.Movable(AxisY) {
			movable = append(movable, MovableCell{Index: i, Area: c.Area, Position: pl.Positions[i]})
		} else {
			fixed = append(fixed, FixedCell{Index: i, Size: c.Size, Position: pl.Positions[i]})
		}
	}
	return movable, fixed
}

// ApplyLegalization writes a RoughLegalizer's result back into pl
// (original_source/circuit.cxx's second get_result overload — see
// SPEC_FULL.md §11). Cells not present in legalized are left untouched.
func ApplyLegalization(pl *Placement, legalized []LegalizedCell) {
	for _, lc := range legalized {
		pl.Positions[lc.Index] = lc.Position
	}
}
