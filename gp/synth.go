// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import "github.com/cpmech/gosl/rnd"

// RandomNetlistConfig parameterizes RandomNetlist.
type RandomNetlistConfig struct {
	Seed          int
	CellCount     int
	NetCount      int
	MaxPinsPerNet int // every net gets between 2 and MaxPinsPerNet pins
	Surface       Box[int]
}

// RandomNetlist builds a synthetic netlist and an initial placement with
// cells scattered uniformly over cfg.Surface, for use in tests and
// benchmarks that need a netlist without parsing a physical format
// (SPEC_FULL.md §10). It reuses the basic sampling primitives
// (rnd.Init/rnd.Int/rnd.Float64) from the same gosl/rnd package inp/sim.go
// draws its random-variable distributions from, generalized here from
// parameter-uncertainty sampling to netlist topology sampling.
func RandomNetlist(cfg RandomNetlistConfig) (*Netlist, *Placement, error) {
	rnd.Init(cfg.Seed)

	cells := make([]CellInput, cfg.CellCount)
	for i := range cells {
		cells[i] = CellInput{
			Size:       Point[int]{X: 1, Y: 1},
			Area:       1,
			Attributes: XMovable | YMovable | XFlippable | YFlippable,
		}
	}

	nets := make([]NetInput, cfg.NetCount)
	for i := range nets {
		nets[i] = NetInput{Weight: 1}
	}

	var pins []PinInput
	for n := 0; n < cfg.NetCount; n++ {
		k := rnd.Int(2, cfg.MaxPinsPerNet)
		for j := 0; j < k; j++ {
			pins = append(pins, PinInput{
				CellIndex: rnd.Int(0, cfg.CellCount-1),
				NetIndex:  n,
			})
		}
	}

	nl, err := NewNetlist(cells, nets, pins)
	if err != nil {
		return nil, nil, err
	}

	pl := NewPlacement(cfg.CellCount)
	for i := range pl.Positions {
		pl.Positions[i] = Point[float64]{
			X: rnd.Float64(float64(cfg.Surface.XMin), float64(cfg.Surface.XMax)),
			Y: rnd.Float64(float64(cfg.Surface.YMin), float64(cfg.Surface.YMax)),
		}
	}
	return nl, pl, nil
}
