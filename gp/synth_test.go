// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_synth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("synth01: RandomNetlist produces a self-consistent netlist")

	nl, pl, err := RandomNetlist(RandomNetlistConfig{
		Seed:          7,
		CellCount:     20,
		NetCount:      15,
		MaxPinsPerNet: 4,
		Surface:       Box[int]{XMin: 0, XMax: 100, YMin: 0, YMax: 100},
	})
	if err != nil {
		tst.Fatalf("RandomNetlist failed: %v", err)
	}
	if err := nl.Selfcheck(); err != nil {
		tst.Fatalf("Selfcheck failed: %v", err)
	}

	chk.IntAssert(nl.CellCount(), 20)
	chk.IntAssert(nl.NetCount(), 15)
	chk.IntAssert(pl.CellCount(), 20)

	for n := 0; n < nl.NetCount(); n++ {
		cnt := nl.NetPinCount(n)
		if cnt < 2 || cnt > 4 {
			tst.Fatalf("net %d has %d pins, want between 2 and 4", n, cnt)
		}
	}
	for _, p := range pl.Positions {
		if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
			tst.Fatalf("cell placed outside the surface: %+v", p)
		}
	}
}
