// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Solver is the external collaborator named solve_CG in the spec: given a
// symmetric positive-definite system, an initial guess and a relative
// tolerance, it returns an approximate solution with
// ||Ax-b|| <= relTol*||b||. The CORE never looks inside a Solver; CG below
// is the one concrete implementation used by tests and cmd/goplace-mm.
type Solver interface {
	Solve(a *la.CCMatrix, b, guess []float64, relTol float64) ([]float64, error)
}

// CG is an unpreconditioned conjugate-gradient solver over gosl/la's sparse
// compressed-column matrices, using la.SpMatVecMulAdd for every
// matrix-vector product, following the same reliance on gosl/la that
// fem/essenbcs.go's AddToRhs uses for its own sparse products.
type CG struct {
	// MaxIter bounds the iteration count; zero selects 2*dim+16.
	MaxIter int
}

// Solve implements Solver.
func (s CG) Solve(a *la.CCMatrix, b, guess []float64, relTol float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, nil
	}
	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = 2*n + 16
	}

	x := make([]float64, n)
	la.VecCopy(x, 1, guess)

	r := make([]float64, n)
	la.VecFill(r, 0)
	la.SpMatVecMulAdd(r, 1, a, x) // r = A*x
	for i := range r {
		r[i] = b[i] - r[i] // r = b - A*x
	}

	p := make([]float64, n)
	la.VecCopy(p, 1, r)

	bNorm := la.VecNorm(b)
	if bNorm == 0 {
		bNorm = 1
	}
	tol := relTol * bNorm
	rsOld := dot(r, r)

	ap := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		if math.Sqrt(rsOld) <= tol {
			break
		}
		la.VecFill(ap, 0)
		la.SpMatVecMulAdd(ap, 1, a, p) // ap = A*p

		denom := dot(p, ap)
		if denom == 0 {
			break
		}
		alpha := rsOld / denom

		la.VecAdd(x, alpha, p)   // x += alpha*p
		la.VecAdd(r, -alpha, ap) // r -= alpha*ap

		rsNew := dot(r, r)
		beta := rsNew / rsOld

		la.VecScale(p, 0, beta, p) // p = beta*p
		la.VecAdd(p, 1, r)         // p += r

		rsOld = rsNew
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("CG solve produced a non-finite value")
		}
	}
	return x, nil
}

// dot is the Euclidean inner product. gosl/utl only provides a fixed-arity
// Dot3d; a general one is a three-line loop, so no library is warranted
// here (see DESIGN.md).
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Solve assembles this system's compressed matrix and calls solver with the
// given guess and relative tolerance. guess must have length Dim(); a
// mismatch is a precondition violation (§7) and panics.
func (l *LinearSystem) Solve(solver Solver, guess []float64, relTol float64) ([]float64, error) {
	checkGuess(l.dim, guess)
	return solver.Solve(l.Matrix(), l.rhs, guess, relTol)
}
