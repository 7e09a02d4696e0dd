// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import "github.com/cpmech/gosl/plt"

// PlotPlacement renders a debug view of a placement: every net's bounding
// box in blue and every cell's center as a black dot, saved to
// dirout/fname. It generalizes mreten/plot.go's Plot/PlotEnd couple from a
// 1-D retention curve to a 2-D placement (SPEC_FULL.md §10); it has no
// effect on the CORE's numerics and exists for manual inspection only.
func PlotPlacement(nl *Netlist, pl *Placement, dirout, fname string) {
	plt.Reset()

	for n := 0; n < nl.NetCount(); n++ {
		pins := pins2D(nl, pl, n)
		if len(pins) == 0 {
			continue
		}
		xmin, xmax := pins[0].pos.X, pins[0].pos.X
		ymin, ymax := pins[0].pos.Y, pins[0].pos.Y
		for _, p := range pins[1:] {
			if p.pos.X < xmin {
				xmin = p.pos.X
			}
			if p.pos.X > xmax {
				xmax = p.pos.X
			}
			if p.pos.Y < ymin {
				ymin = p.pos.Y
			}
			if p.pos.Y > ymax {
				ymax = p.pos.Y
			}
		}
		bx := []float64{xmin, xmax, xmax, xmin, xmin}
		by := []float64{ymin, ymin, ymax, ymax, ymin}
		plt.Plot(bx, by, "'b-', lw=0.5, clip_on=0")
	}

	cx := make([]float64, nl.CellCount())
	cy := make([]float64, nl.CellCount())
	for i, p := range pl.Positions {
		cx[i], cy[i] = p.X, p.Y
	}
	plt.Plot(cx, cy, "'ko', clip_on=0")

	plt.Equal()
	plt.Gll("$x$", "$y$", "")
	plt.SaveD(dirout, fname)
}
