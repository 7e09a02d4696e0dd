// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_cg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg01: CG solves a small SPD system")

	// A = [[4,1],[1,3]], b = [1,2] -> x = [1/11, 7/11]
	var trip la.Triplet
	trip.Init(2, 2, 4)
	trip.Put(0, 0, 4)
	trip.Put(0, 1, 1)
	trip.Put(1, 0, 1)
	trip.Put(1, 1, 3)
	a := trip.ToMatrix(nil)
	b := []float64{1, 2}

	solver := CG{}
	x, err := solver.Solve(a, b, []float64{0, 0}, 1e-10)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Vector(tst, "x", 1e-6, x, []float64{1.0 / 11.0, 7.0 / 11.0})
}

func Test_cg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg02: CG on an empty system returns no values")

	solver := CG{}
	x, err := solver.Solve(nil, nil, nil, 1e-10)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if len(x) != 0 {
		tst.Fatalf("expected an empty result, got %v", x)
	}
}

func Test_dot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dot01: Euclidean inner product")

	chk.Scalar(tst, "dot", 1e-15, dot([]float64{1, 2, 3}, []float64{4, 5, 6}), 32.0)
}
