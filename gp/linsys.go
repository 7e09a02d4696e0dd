// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// LinearSystem accumulates a symmetric sparse matrix A and a right-hand
// side b over a variable index set [0, dim). It is a thin domain-specific
// façade over gosl/la's triplet accumulator and compressed-column matrix,
// following the same Init/Put/ToMatrix lifecycle fem/essenbcs.go uses for
// its constraint matrix.
type LinearSystem struct {
	dim  int
	trip la.Triplet
	rhs  []float64
}

// NewLinearSystem allocates an empty system of the given dimension.
// nnzMax bounds the number of (i,j,v) triplets that will be inserted; callers
// should over-estimate rather than under-estimate, since la.Triplet does not
// grow past its initial capacity.
func NewLinearSystem(dim, nnzMax int) *LinearSystem {
	l := &LinearSystem{dim: dim, rhs: make([]float64, dim)}
	l.trip.Init(dim, dim, nnzMax)
	return l
}

// Dim returns the number of variables (rows/columns) in the system.
func (l *LinearSystem) Dim() int { return l.dim }

// RHS returns the accumulated right-hand side vector.
func (l *LinearSystem) RHS() []float64 { return l.rhs }

// Matrix compacts the accumulated triplets into a compressed-column matrix,
// ready for the solver.
func (l *LinearSystem) Matrix() *la.CCMatrix { return l.trip.ToMatrix(nil) }

// addTriplet records A[i,j] += v.
func (l *LinearSystem) addTriplet(i, j int, v float64) { l.trip.Put(i, j, v) }

// addDoublet records b[i] += v.
func (l *LinearSystem) addDoublet(i int, v float64) { l.rhs[i] += v }

// AddAnchor pulls variable c toward target with the given force: it is the
// diagonal + RHS pattern shared by both anchor builders (§4.6).
func (l *LinearSystem) AddAnchor(force float64, c int, target float64) {
	l.addTriplet(c, c, force)
	l.addDoublet(c, force*target)
}

// pinFixedRow pins variable c to value pos with unit diagonal mass (§4.5
// step 2, and the fixed-row shape required by §8 invariant 4).
func (l *LinearSystem) pinFixedRow(c int, pos float64) {
	l.addTriplet(c, c, 1.0)
	l.addDoublet(c, pos)
}

// addForceBothMovable records the quadratic force between two movable
// variables c1, c2 with the given offsets (§4.1, "both movable" case).
func (l *LinearSystem) addForceBothMovable(force float64, c1, c2 int, offset1, offset2 float64) {
	l.addTriplet(c1, c1, force)
	l.addTriplet(c2, c2, force)
	l.addTriplet(c1, c2, -force)
	l.addTriplet(c2, c1, -force)
	l.addDoublet(c1, force*(offset2-offset1))
	l.addDoublet(c2, force*(offset1-offset2))
}

// addForceOneMovable records the quadratic force between a movable variable
// c (with offset) and a fixed point at fixedPos (§4.1, "one movable" case).
func (l *LinearSystem) addForceOneMovable(force float64, c int, fixedPos, offset float64) {
	l.addTriplet(c, c, force)
	l.addDoublet(c, force*(fixedPos-offset))
}

// addForce accumulates the quadratic force between two 1-D pins, dispatching
// on movability per §4.1: both movable, one movable, or both fixed (no-op).
func addForce(l *LinearSystem, p1, p2 pin1D, force float64) {
	switch {
	case p1.movable && p2.movable:
		l.addForceBothMovable(force, p1.cell, p2.cell, p1.offset, p2.offset)
	case p1.movable:
		l.addForceOneMovable(force, p1.cell, p2.pos, p1.offset)
	case p2.movable:
		l.addForceOneMovable(force, p2.cell, p1.pos, p2.offset)
	}
}

// addForceB2B computes the Bound-to-Bound weight
// force = scale / max(tol, |p2.pos - p1.pos|) and accumulates it via
// addForce (§4.1).
func addForceB2B(l *LinearSystem, p1, p2 pin1D, tol, scale float64) {
	force := scale / utl.Max(tol, math.Abs(p2.pos-p1.pos))
	addForce(l, p1, p2, force)
}

// buildEmptySystems returns a fresh pair of per-axis systems of the given
// dimension (Nc for HPWL-F/R, Nc+Nn for the Star model), with every
// axis-fixed cell's row pre-populated to pin it at its current position
// (§4.5 step 2). nnzMax bounds each system's triplet capacity.
func buildEmptySystems(nl *Netlist, pl *Placement, dim, nnzMax int) (x, y *LinearSystem) {
	x = NewLinearSystem(dim, nnzMax)
	y = NewLinearSystem(dim, nnzMax)
	for i := 0; i < nl.CellCount(); i++ {
		attrs := nl.cellAttributes[i]
		if attrs.Fixed(AxisX) {
			x.pinFixedRow(i, pl.Positions[i].X)
		}
		if attrs.Fixed(AxisY) {
			y.pinFixedRow(i, pl.Positions[i].Y)
		}
	}
	return x, y
}

// estimateNNZ upper-bounds the number of triplets a wirelength model can add:
// each pin may take part in at most two B2B edges (HPWL-F) each contributing
// up to 4 entries, plus the Nc fixed-row entries and dim extra for the Star
// model's per-net diagonal fallback.
func estimateNNZ(nl *Netlist, dim int) int {
	return 8*nl.PinCount() + 2*dim + 16
}

// checkGuess panics if a guess vector's length does not match the system's
// dimension — a precondition violation per §7, not a recoverable error.
func checkGuess(dim int, guess []float64) {
	if len(guess) != dim {
		chk.Panic("solve_CG: guess length %d does not match system dimension %d", len(guess), dim)
	}
}
