// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import (
	"math"
	"sort"
)

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Raise returns the equivalent cubic curve.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Extrema returns the parameter values where either coordinate has a
// zero derivative, sorted ascending.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, SolveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, SolveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Bounds {
	b := NewBounds(c.P0.X, c.P0.Y, c.P3.X, c.P3.Y)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		b = b.Add(p.X, p.Y)
	}
	return b
}

// Flatten approximates the curve with line segments whose deviation from
// the curve stays under tolerance. The start point is not included.
func (c CubicBez) Flatten(tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	// Subdivision count from the second-difference bound of the control polygon.
	dd1 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2).Length()
	dd2 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3).Length()
	dd := math.Max(dd1, dd2)
	n := int(math.Ceil(math.Sqrt(0.75 * dd / tolerance)))
	n = max(1, min(n, 256))

	out := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, c.Eval(float64(i)/float64(n)))
	}
	return out
}
