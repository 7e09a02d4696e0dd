// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

// Axis selects a spatial coordinate.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Number is any scalar type a Point or Box may be built over.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// Point is a generic 2D pair of scalars, used for cell sizes (Point[int]),
// pin offsets and placement coordinates (Point[float64]).
type Point[T Number] struct {
	X, Y T
}

// NewPoint builds a Point from its two components.
func NewPoint[T Number](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// Add returns a+b component-wise.
func (a Point[T]) Add(b Point[T]) Point[T] { return Point[T]{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b component-wise.
func (a Point[T]) Sub(b Point[T]) Point[T] { return Point[T]{a.X - b.X, a.Y - b.Y} }

// Scale returns lambda*a.
func (a Point[T]) Scale(lambda T) Point[T] { return Point[T]{lambda * a.X, lambda * a.Y} }

// Mul returns a*b component-wise; used to fold an Orientation's signs into an offset.
func (a Point[T]) Mul(b Point[T]) Point[T] { return Point[T]{a.X * b.X, a.Y * b.Y} }

// Get returns the component named by axis.
func (a Point[T]) Get(axis Axis) T {
	if axis == AxisX {
		return a.X
	}
	return a.Y
}

// Set returns a copy of a with the component named by axis replaced.
func (a Point[T]) Set(axis Axis, v T) Point[T] {
	if axis == AxisX {
		a.X = v
	} else {
		a.Y = v
	}
	return a
}

// Box is an axis-aligned rectangle, generic over its scalar type (e.g. the
// placement surface uses Box[int]).
type Box[T Number] struct {
	XMin, XMax, YMin, YMax T
}

// Intersects reports whether b and o overlap (open intervals, matching
// circuit.cxx's box<T>::intersects).
func (b Box[T]) Intersects(o Box[T]) bool {
	return b.XMin < o.XMax && b.YMin < o.YMax && o.XMin < b.XMax && o.YMin < b.YMax
}

// Intersection returns the overlapping rectangle of b and o; callers should
// check Intersects first if an empty/negative-area result would be invalid.
func (b Box[T]) Intersection(o Box[T]) Box[T] {
	return Box[T]{
		XMin: maxOf(b.XMin, o.XMin),
		XMax: minOf(b.XMax, o.XMax),
		YMin: maxOf(b.YMin, o.YMin),
		YMax: minOf(b.YMax, o.YMax),
	}
}

func maxOf[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minOf[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Orientation is a per-axis sign pair {+1,-1} modeling a cell flip; it folds
// into a pin offset by component-wise multiplication before translation by
// the cell's position.
type Orientation struct {
	SX, SY float64
}

// Identity is the non-flipped orientation.
func Identity() Orientation { return Orientation{SX: 1, SY: 1} }

// Apply returns offset rotated by o (component-wise sign flip).
func (o Orientation) Apply(offset Point[float64]) Point[float64] {
	return Point[float64]{X: o.SX * offset.X, Y: o.SY * offset.Y}
}

// Get returns the sign for the given axis.
func (o Orientation) Get(axis Axis) float64 {
	if axis == AxisX {
		return o.SX
	}
	return o.SY
}
