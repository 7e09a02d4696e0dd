// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_star01 is scenario S3: a 0-pin net in the Star model just pins its
// own auxiliary variable to keep the matrix non-singular.
func Test_star01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("star01: S3 empty net in the Star model")

	nl, err := NewNetlist(nil, []NetInput{{Weight: 1}}, nil)
	if err != nil {
		tst.Fatalf("NewNetlist failed: %v", err)
	}
	pl := NewPlacement(0)

	sys := StarSystem(nl, pl, 1e-3, 2, 1<<30)
	chk.IntAssert(sys.X.Dim(), 1)

	x, err := sys.X.Solve(CG{}, []float64{0}, 1e-9)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Scalar(tst, "star auxiliary variable", 1e-12, x[0], 0.0)
}

// Test_star02 checks that a 3-pin net's auxiliary star variable settles at
// the median of its pins and that every movable pin is pulled toward it.
func Test_star02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("star02: 3-pin net star auxiliary variable")

	nl, pl := buildS1() // cells 0,1 fixed at x=0,10; cell 2 movable
	sys := StarSystem(nl, pl, 1e-3, 2, 1<<30)

	guess := []float64{pl.Positions[0].X, pl.Positions[1].X, pl.Positions[2].X, 0}
	x, err := sys.X.Solve(CG{}, guess, 1e-9)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Scalar(tst, "x[0] (fixed)", 1e-9, x[0], 0.0)
	chk.Scalar(tst, "x[1] (fixed)", 1e-9, x[1], 10.0)
	chk.Scalar(tst, "x[2] (movable cell, pulled to the star)", 1e-9, x[2], 5.0)
	chk.Scalar(tst, "x[3] (star variable, at the median)", 1e-9, x[3], 5.0)
}
