// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"golang.org/x/sync/errgroup"
)

// WirelengthModel selects which of the three quadratic wirelength models
// (§4.2-§4.4) a Majorization-Minimization iteration majorizes HPWL with.
type WirelengthModel int

const (
	ModelHPWLF WirelengthModel = iota
	ModelHPWLR
	ModelStar
)

// MMConfig holds one outer Majorization-Minimization iteration's parameters:
// the wirelength model choice, the parameters the model builders and the
// anchor builder take individually (§4.2-§4.6), and the solver with its
// relative tolerance.
type MMConfig struct {
	Model             WirelengthModel
	Tol               float64
	MinNetSize        int
	MaxNetSize        int
	AnchorForce       float64
	AnchorMinDistance float64
	RelTol            float64
	Solver            Solver
}

// RunMM performs one outer iteration of the Generalized-HPWL / B2B iterative
// scheme named in spec.md §1: build a wirelength system evaluated at the
// current (lower-bound) placement lb, add a B2B anchor pulling toward the
// reference (upper-bound) placement ub, solve both axes in parallel, and
// return the next placement. It is the composition circuit.cxx leaves to an
// external caller (its get_*_linear_system / get_linear_pulling_forces /
// get_result are never glued together in one function) — see SPEC_FULL.md
// §4.12.
func RunMM(nl *Netlist, ub, lb *Placement, cfg MMConfig) (*Placement, error) {
	solver := cfg.Solver
	if solver == nil {
		solver = CG{}
	}
	sys := buildCombinedSystems(nl, ub, lb, cfg)
	return Solve(nl, sys, solver, lb, cfg.RelTol)
}

// buildCombinedSystems builds one pair of per-axis systems summing the
// chosen wirelength model (evaluated at lb) with the B2B anchor pulling
// toward ub, so the CG solve below operates on a single majorized quadratic
// rather than two independent ones (§4.5, §4.6).
func buildCombinedSystems(nl *Netlist, ub, lb *Placement, cfg MMConfig) *AxisSystems {
	dim := nl.CellCount()
	if cfg.Model == ModelStar {
		dim += nl.NetCount()
	}
	x, y := buildEmptySystems(nl, lb, dim, estimateNNZ(nl, dim))

	for n := 0; n < nl.NetCount(); n++ {
		cnt := nl.NetPinCount(n)
		inWindow := cnt >= cfg.MinNetSize && cnt < cfg.MaxNetSize
		switch cfg.Model {
		case ModelHPWLF:
			if !inWindow {
				continue
			}
			hpwlfNet(pins1D(nl, lb, n, AxisX), x, cfg.Tol)
			hpwlfNet(pins1D(nl, lb, n, AxisY), y, cfg.Tol)
		case ModelHPWLR:
			if !inWindow {
				continue
			}
			hpwlrNet(pins1D(nl, lb, n, AxisX), x, cfg.Tol)
			hpwlrNet(pins1D(nl, lb, n, AxisY), y, cfg.Tol)
		case ModelStar:
			starIndex := nl.CellCount() + n
			if !inWindow {
				x.addTriplet(starIndex, starIndex, 1.0)
				y.addTriplet(starIndex, starIndex, 1.0)
				continue
			}
			starNet(pins1D(nl, lb, n, AxisX), x, cfg.Tol, starIndex)
			starNet(pins1D(nl, lb, n, AxisY), y, cfg.Tol, starIndex)
		}
	}

	scale := areaScales(nl)
	for i := 0; i < nl.CellCount(); i++ {
		wx := cfg.AnchorForce * scale[i] / utl.Max(math.Abs(ub.Positions[i].X-lb.Positions[i].X), cfg.AnchorMinDistance)
		wy := cfg.AnchorForce * scale[i] / utl.Max(math.Abs(ub.Positions[i].Y-lb.Positions[i].Y), cfg.AnchorMinDistance)
		x.AddAnchor(wx, i, ub.Positions[i].X)
		y.AddAnchor(wy, i, ub.Positions[i].Y)
	}

	return &AxisSystems{X: x, Y: y}
}

// Solve runs both axes of sys through solver concurrently (§5: the CORE's
// two-axis parallelism), using guess's cell positions as the initial vectors
// (any Star auxiliary variables start at zero), then writes the result back
// into a copy of guess — touching only the axes each cell is movable on,
// the double-guard required by §8 invariant 2.
func Solve(nl *Netlist, sys *AxisSystems, solver Solver, guess *Placement, relTol float64) (*Placement, error) {
	dim := sys.X.Dim()
	gx := make([]float64, dim)
	gy := make([]float64, dim)
	for i := 0; i < nl.CellCount(); i++ {
		gx[i] = guess.Positions[i].X
		gy[i] = guess.Positions[i].Y
	}

	var x, y []float64
	var g errgroup.Group
	g.Go(func() error {
		var err error
		x, err = sys.X.Solve(solver, gx, relTol)
		return err
	})
	g.Go(func() error {
		var err error
		y, err = sys.Y.Solve(solver, gy, relTol)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := guess.Clone()
	for i := 0; i < nl.CellCount(); i++ {
		attrs := nl.cellAttributes[i]
		if attrs.Movable(AxisX) {
			out.Positions[i].X = x[i]
		}
		if attrs.Movable(AxisY) {
			out.Positions[i].Y = y[i]
		}
	}
	return out, nil
}
