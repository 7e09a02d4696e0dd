// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_hpwlr01 is scenario S2: on a 2-pin net, HPWL-R and HPWL-F must agree
// (the 1/(k-1) scaling is 1 for k=2, matching HPWL-R's constant scale).
func Test_hpwlr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hpwlr01: S2 HPWL-R vs HPWL-F on a 2-pin net")

	cells := []CellInput{
		{Attributes: 0},                 // cell 0: fixed at x=0
		{Attributes: XMovable | YMovable}, // cell 1: movable
	}
	nets := []NetInput{{Weight: 1}}
	pins := []PinInput{{CellIndex: 0, NetIndex: 0}, {CellIndex: 1, NetIndex: 0}}
	nl, err := NewNetlist(cells, nets, pins)
	if err != nil {
		tst.Fatalf("NewNetlist failed: %v", err)
	}
	pl := NewPlacement(2)
	pl.Positions[0] = Point[float64]{X: 0}
	pl.Positions[1] = Point[float64]{X: 3}

	guess := []float64{0, 3}
	f := HPWLFSystem(nl, pl, 1e-3, 2, 1<<30)
	r := HPWLRSystem(nl, pl, 1e-3, 2, 1<<30)

	xf, err := f.X.Solve(CG{}, guess, 1e-9)
	if err != nil {
		tst.Fatalf("HPWL-F solve failed: %v", err)
	}
	xr, err := r.X.Solve(CG{}, guess, 1e-9)
	if err != nil {
		tst.Fatalf("HPWL-R solve failed: %v", err)
	}
	chk.Vector(tst, "x", 1e-9, xf, xr)
	chk.Scalar(tst, "x[0] (fixed)", 1e-9, xf[0], 0.0)
	chk.Scalar(tst, "x[1] (movable, pulled to the fixed pin)", 1e-9, xf[1], 0.0)
}

func Test_hpwlr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hpwlr02: net size window excludes nets outside [min,max)")

	nl, pl := buildS1()
	sys := HPWLRSystem(nl, pl, 1e-3, 4, 1<<30) // 3-pin net excluded by minSize=4

	// the two fixed rows still carry their pinned value...
	chk.Scalar(tst, "b[0] (fixed row)", 1e-15, sys.X.RHS()[0], pl.Positions[0].X)
	chk.Scalar(tst, "b[1] (fixed row)", 1e-15, sys.X.RHS()[1], pl.Positions[1].X)
	// ...but the movable cell received no wirelength force at all
	chk.Scalar(tst, "b[2] (movable, no force)", 1e-15, sys.X.RHS()[2], 0.0)
}
