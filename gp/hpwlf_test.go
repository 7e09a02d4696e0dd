// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// buildS1 builds scenario S1 from the spec: two fixed pads (cells 0 and 1,
// at x=0 and x=10) and one movable cell (2) on a single 3-pin net.
func buildS1() (*Netlist, *Placement) {
	cells := []CellInput{
		{Size: Point[int]{X: 1, Y: 1}, Area: 1, Attributes: 0},
		{Size: Point[int]{X: 1, Y: 1}, Area: 1, Attributes: 0},
		{Size: Point[int]{X: 1, Y: 1}, Area: 1, Attributes: XMovable | YMovable},
	}
	nets := []NetInput{{Weight: 1}}
	pins := []PinInput{
		{CellIndex: 0, NetIndex: 0},
		{CellIndex: 1, NetIndex: 0},
		{CellIndex: 2, NetIndex: 0},
	}
	nl, err := NewNetlist(cells, nets, pins)
	if err != nil {
		panic(err)
	}
	pl := NewPlacement(3)
	pl.Positions[0] = Point[float64]{X: 0}
	pl.Positions[1] = Point[float64]{X: 10}
	pl.Positions[2] = Point[float64]{X: 5} // already the B2B fixed point between the two pads
	return nl, pl
}

func Test_hpwlf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hpwlf01: S1 single movable cell, two fixed pads")

	nl, pl := buildS1()
	sys := HPWLFSystem(nl, pl, 1e-3, 2, 1<<30)

	guess := []float64{pl.Positions[0].X, pl.Positions[1].X, pl.Positions[2].X}
	x, err := sys.X.Solve(CG{}, guess, 1e-9)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Scalar(tst, "x[0] (fixed)", 1e-9, x[0], 0.0)
	chk.Scalar(tst, "x[1] (fixed)", 1e-9, x[1], 10.0)
	chk.Scalar(tst, "x[2] (movable)", 1e-9, x[2], 5.0)
}

func Test_hpwlf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hpwlf02: degenerate coincident pins stay finite")

	cells := []CellInput{
		{Attributes: 0},
		{Attributes: XMovable | YMovable},
	}
	nets := []NetInput{{Weight: 1}}
	pins := []PinInput{{CellIndex: 0, NetIndex: 0}, {CellIndex: 1, NetIndex: 0}}
	nl, err := NewNetlist(cells, nets, pins)
	if err != nil {
		tst.Fatalf("NewNetlist failed: %v", err)
	}
	pl := NewPlacement(2)
	pl.Positions[0] = Point[float64]{X: 5}
	pl.Positions[1] = Point[float64]{X: 5} // identical position

	sys := HPWLFSystem(nl, pl, 1e-3, 2, 1<<30)
	x, err := sys.X.Solve(CG{}, []float64{5, 5}, 1e-9)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	for _, v := range x {
		if v != v { // NaN check without importing math
			tst.Fatalf("solution contains NaN: %v", x)
		}
	}
	chk.Scalar(tst, "x[1] stays at its fixed-anchor position", 1e-6, x[1], 5.0)
}

func Test_extremal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("extremal01: stable first-occurrence tie-break")

	pins := []pin1D{
		{cell: 0, pos: 3},
		{cell: 1, pos: 1}, // first occurrence of the minimum
		{cell: 2, pos: 1}, // a later, tied minimum: must not win
		{cell: 3, pos: 5}, // first occurrence of the maximum
		{cell: 4, pos: 5}, // a later, tied maximum: must not win
	}
	minIdx, maxIdx := extremalIndices(pins)
	chk.IntAssert(minIdx, 1)
	chk.IntAssert(maxIdx, 3)
}
