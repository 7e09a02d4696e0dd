// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01: Point arithmetic")

	a := Point[float64]{X: 1, Y: 2}
	b := Point[float64]{X: 3, Y: -1}

	chk.Scalar(tst, "a+b x", 1e-15, a.Add(b).X, 4)
	chk.Scalar(tst, "a+b y", 1e-15, a.Add(b).Y, 1)
	chk.Scalar(tst, "a-b x", 1e-15, a.Sub(b).X, -2)
	chk.Scalar(tst, "a.Scale(2) x", 1e-15, a.Scale(2).X, 2)
	chk.Scalar(tst, "a.Get(AxisY)", 1e-15, a.Get(AxisY), 2)
	chk.Scalar(tst, "a.Set(AxisX,9).X", 1e-15, a.Set(AxisX, 9).X, 9)
}

func Test_box01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("box01: Box intersection")

	a := Box[int]{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	b := Box[int]{XMin: 5, XMax: 15, YMin: 5, YMax: 15}

	if !a.Intersects(b) {
		tst.Fatalf("a and b must intersect")
	}
	i := a.Intersection(b)
	chk.IntAssert(i.XMin, 5)
	chk.IntAssert(i.XMax, 10)
	chk.IntAssert(i.YMin, 5)
	chk.IntAssert(i.YMax, 10)

	c := Box[int]{XMin: 20, XMax: 30, YMin: 20, YMax: 30}
	if a.Intersects(c) {
		tst.Fatalf("a and c must not intersect")
	}
}

func Test_orientation01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orientation01: sign-flip application")

	id := Identity()
	offset := Point[float64]{X: 1, Y: -2}
	chk.Vector(tst, "identity", 1e-15, []float64{id.Apply(offset).X, id.Apply(offset).Y}, []float64{1, -2})

	flip := Orientation{SX: -1, SY: 1}
	chk.Vector(tst, "x-flip", 1e-15, []float64{flip.Apply(offset).X, flip.Apply(offset).Y}, []float64{-1, -2})
}
