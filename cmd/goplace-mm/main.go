// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command goplace-mm drives the outer Majorization-Minimization loop over a
// synthetic netlist, for manual inspection and smoke testing of the gp
// package. It is ambient CLI plumbing, not part of the CORE it exercises.
package main

import (
	"flag"

	"github.com/cpmech/goplace/gp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	nc := flag.Int("nc", 200, "number of cells")
	nn := flag.Int("nn", 150, "number of nets")
	maxPins := flag.Int("maxpins", 6, "maximum pins per net")
	surface := flag.Int("surface", 1000, "placement surface side length")
	seed := flag.Int("seed", 0, "random seed")
	model := flag.String("model", "hpwlf", "wirelength model: hpwlf, hpwlr, star")
	iters := flag.Int("iters", 20, "number of outer Majorization-Minimization iterations")
	tol := flag.Float64("tol", 1e-3, "B2B weight clamp, in placement units")
	minNet := flag.Int("minnet", 2, "minimum net size handled by the wirelength model")
	maxNet := flag.Int("maxnet", 1<<30, "exclusive maximum net size handled by the wirelength model")
	anchorBase := flag.Float64("anchor-base", 1e-3, "initial anchor force")
	anchorSlope := flag.Float64("anchor-slope", 2e-4, "per-iteration anchor force increase")
	minDist := flag.Float64("min-dist", 1e-2, "minimum denominator for the anchor's B2B weight")
	relTol := flag.Float64("reltol", 1e-6, "CG relative residual tolerance")
	plotDir := flag.String("plotdir", "", "if set, save a placement plot to this directory every plot-every iterations")
	plotEvery := flag.Int("plot-every", 5, "plot interval, in iterations")
	flag.Parse()

	m, err := parseModel(*model)
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("> building random netlist: %d cells, %d nets\n", *nc, *nn)
	nl, pl, err := gp.RandomNetlist(gp.RandomNetlistConfig{
		Seed:          *seed,
		CellCount:     *nc,
		NetCount:      *nn,
		MaxPinsPerNet: *maxPins,
		Surface:       gp.Box[int]{XMin: 0, XMax: *surface, YMin: 0, YMax: *surface},
	})
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := nl.Selfcheck(); err != nil {
		chk.Panic("%v", err)
	}

	ub := pl
	lb := pl.Clone()
	schedule := gp.LinearForceSchedule{Base: *anchorBase, Slope: *anchorSlope}
	solver := gp.CG{}

	for iter := 0; iter < *iters; iter++ {
		cfg := gp.MMConfig{
			Model:             m,
			Tol:               *tol,
			MinNetSize:        *minNet,
			MaxNetSize:        *maxNet,
			AnchorForce:       gp.ForceSchedule(schedule, iter),
			AnchorMinDistance: *minDist,
			RelTol:            *relTol,
			Solver:            solver,
		}
		next, err := gp.RunMM(nl, ub, lb, cfg)
		if err != nil {
			chk.Panic("iteration %d: %v", iter, err)
		}
		lb = next

		wl := gp.HPWLWirelength(nl, lb)
		io.Pf("> iter %3d  HPWL=%.4f\n", iter, wl)

		if *plotDir != "" && iter%*plotEvery == 0 {
			gp.PlotPlacement(nl, lb, *plotDir, io.Sf("iter%03d.png", iter))
		}
	}

	io.Pf("\n> final HPWL           = %.4f\n", gp.HPWLWirelength(nl, lb))
	io.Pf("> mean linear disrupt.  = %.4f\n", gp.MeanLinearDisruption(nl, ub, lb))
	io.Pf("> mean quadratic disrupt. = %.4f\n", gp.MeanQuadraticDisruption(nl, ub, lb))
}

func parseModel(s string) (gp.WirelengthModel, error) {
	switch s {
	case "hpwlf":
		return gp.ModelHPWLF, nil
	case "hpwlr":
		return gp.ModelHPWLR, nil
	case "star":
		return gp.ModelStar, nil
	default:
		return 0, chk.Err("unknown wirelength model %q (want hpwlf, hpwlr or star)", s)
	}
}
