// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

// Placement holds the mutable per-cell state of a netlist: a position and an
// orientation for every cell. Positions of fixed cells must never be
// altered by the core (§3, §8 invariant 2).
type Placement struct {
	Positions    []Point[float64]
	Orientations []Orientation
}

// NewPlacement returns a placement for nc cells, all at the origin with the
// identity orientation.
func NewPlacement(nc int) *Placement {
	p := &Placement{
		Positions:    make([]Point[float64], nc),
		Orientations: make([]Orientation, nc),
	}
	for i := range p.Orientations {
		p.Orientations[i] = Identity()
	}
	return p
}

// CellCount returns the number of cells this placement covers.
func (p *Placement) CellCount() int { return len(p.Positions) }

// Clone returns a deep copy, useful for keeping an upper-bound / lower-bound
// pair of placements across a Majorization-Minimization iteration.
func (p *Placement) Clone() *Placement {
	out := &Placement{
		Positions:    make([]Point[float64], len(p.Positions)),
		Orientations: make([]Orientation, len(p.Orientations)),
	}
	copy(out.Positions, p.Positions)
	copy(out.Orientations, p.Orientations)
	return out
}

// pin1D is a one-axis projection of a pin: its owning cell, its absolute
// position on the axis, its offset from the cell's position, and whether the
// cell is movable on that axis. It mirrors circuit.cxx's pin_1D.
type pin1D struct {
	cell    int
	pos     float64
	offset  float64
	movable bool
}

// pins1D projects every pin of net onto axis, applying the placement's
// orientation and position, in net-major storage order (§5 ordering
// guarantee: "pin iteration within a net is in storage order").
func pins1D(nl *Netlist, pl *Placement, net int, axis Axis) []pin1D {
	refs := nl.NetPins(net)
	out := make([]pin1D, len(refs))
	for i, r := range refs {
		off := pl.Orientations[r.CellIndex].Apply(r.Offset).Get(axis)
		pos := off + pl.Positions[r.CellIndex].Get(axis)
		out[i] = pin1D{
			cell:    r.CellIndex,
			pos:     pos,
			offset:  off,
			movable: nl.cellAttributes[r.CellIndex].Movable(axis),
		}
	}
	return out
}

// pin2D is the unprojected counterpart of pin1D, used by metrics that need
// both axes at once.
type pin2D struct {
	cell    int
	pos     Point[float64]
	offset  Point[float64]
	movable bool
}

func pins2D(nl *Netlist, pl *Placement, net int) []pin2D {
	refs := nl.NetPins(net)
	out := make([]pin2D, len(refs))
	for i, r := range refs {
		off := pl.Orientations[r.CellIndex].Apply(r.Offset)
		pos := off.Add(pl.Positions[r.CellIndex])
		attrs := nl.cellAttributes[r.CellIndex]
		out[i] = pin2D{
			cell:    r.CellIndex,
			pos:     pos,
			offset:  off,
			movable: attrs&(XMovable|YMovable) != 0,
		}
	}
	return out
}
