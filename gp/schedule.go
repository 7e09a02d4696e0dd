// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import "github.com/cpmech/gosl/fun"

// ForceSchedule returns the anchor force for outer iteration iter of an
// gp.RunMM loop, following the field/call shape of inp/sim.go's
// DtFunc/DtoFunc fun.Func fields and fem.Solver.Run's
// (dtFunc, dtoFunc fun.Func) parameters — generalized here from a time step
// schedule to an anchor-force ramp (SPEC_FULL.md §10). f.F's second argument
// is unused by every schedule in this package, matching the teacher's own
// convention of calling Fcn.F(t, nil) for scalar-in-time functions.
func ForceSchedule(f fun.Func, iter int) float64 {
	return f.F(float64(iter), nil)
}

// ConstantForce returns a fun.Func always yielding the same anchor force,
// mirroring inp/sim.go's fallback to &fun.Cte{C: stg.Control.Dt} when no
// schedule function is configured.
func ConstantForce(force float64) fun.Func {
	return &fun.Cte{C: force}
}

// LinearForceSchedule implements fun.Func as Base+Slope*iter, used to
// gradually strengthen the anchor force as a Majorization-Minimization loop
// progresses and the placement should settle rather than keep drifting.
type LinearForceSchedule struct {
	Base, Slope float64
}

// F implements fun.Func.
func (s LinearForceSchedule) F(t float64, x []float64) float64 { return s.Base + s.Slope*t }
