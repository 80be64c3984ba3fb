// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package curve

import (
	"math"

	"github.com/gogpu/ggraph"
)

// Option configures a single Generate call.
type Option func(*params)

type params struct {
	start    *ggraph.Point
	stepT    float64
	hasStepT bool
}

// WithStartPoint prepends p to the point sequence.
func WithStartPoint(p ggraph.Point) Option {
	return func(o *params) {
		o.start = &p
	}
}

// WithStepT sets the step position for Step curves, clamped to [0, 1].
// 0 steps at the previous point, 1 at the next, 0.5 (default) midway.
func WithStepT(t float64) Option {
	return func(o *params) {
		o.stepT = math.Max(0, math.Min(1, t))
		o.hasStepT = true
	}
}

// Generate interpolates points with the given curve kind.
// It returns nil when fewer than two points are available.
func Generate(points []ggraph.Point, kind Kind, opts ...Option) *SegContext {
	var p params
	for _, opt := range opts {
		opt(&p)
	}
	if p.start != nil {
		points = append([]ggraph.Point{*p.start}, points...)
	}
	if len(points) < 2 {
		return nil
	}

	b := &builder{cmds: make([]Command, 0, len(points)+1)}
	switch kind {
	case LinearClosed:
		genLinear(b, points)
		b.closePath()
	case Basis:
		genBasis(b, points)
	case MonotoneX:
		genMonotone(b, points)
	case MonotoneY:
		b.reflect = true
		genMonotone(b, points)
	case Step:
		t := 0.5
		if p.hasStepT {
			t = p.stepT
		}
		genStep(b, points, t)
	case StepBefore:
		genStep(b, points, 0)
	case StepAfter:
		genStep(b, points, 1)
	case Linear:
		genLinear(b, points)
	default:
		ggraph.Logger().Debug("curve: unknown kind, using linear", "kind", string(kind))
		kind = Linear
		genLinear(b, points)
	}

	return &SegContext{
		Kind:      kind,
		Direction: direction(points),
		Commands:  b.cmds,
	}
}

func direction(points []ggraph.Point) Direction {
	first, last := points[0], points[len(points)-1]
	if math.Abs(last.X-first.X) >= math.Abs(last.Y-first.Y) {
		return DirectionX
	}
	return DirectionY
}

func genLinear(b *builder, points []ggraph.Point) {
	b.moveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.lineTo(p.X, p.Y)
	}
}

// genBasis emits a uniform cubic B-spline. The curve starts at the first
// point and ends at the last; interior points act as control points.
func genBasis(b *builder, points []ggraph.Point) {
	x0, y0 := points[0].X, points[0].Y
	x1, y1 := x0, y0
	b.moveTo(x0, y0)

	bezier := func(x, y float64) {
		b.cubicTo(
			(2*x0+x1)/3, (2*y0+y1)/3,
			(x0+2*x1)/3, (y0+2*y1)/3,
			(x0+4*x1+x)/6, (y0+4*y1+y)/6,
		)
	}

	for i, p := range points[1:] {
		switch i {
		case 0:
		case 1:
			b.lineTo((5*x0+x1)/6, (5*y0+y1)/6)
			bezier(p.X, p.Y)
		default:
			bezier(p.X, p.Y)
		}
		x0, x1 = x1, p.X
		y0, y1 = y1, p.Y
	}

	if len(points) > 2 {
		bezier(x1, y1)
	}
	b.lineTo(x1, y1)
}

// genMonotone emits monotone cubic interpolation along x (Steffen's
// method). Coincident consecutive points are skipped.
func genMonotone(b *builder, points []ggraph.Point) {
	m := monotone{b: b, x0: math.NaN(), y0: math.NaN(), x1: math.NaN(), y1: math.NaN(), t0: math.NaN()}
	for _, p := range points {
		if b.reflect {
			m.point(p.Y, p.X)
		} else {
			m.point(p.X, p.Y)
		}
	}
	switch m.state {
	case 2:
		b.lineTo(m.x1, m.y1)
	case 3:
		m.segment(m.t0, m.slope2(m.t0))
	}
}

type monotone struct {
	b                  *builder
	state              int
	x0, y0, x1, y1, t0 float64
}

func (m *monotone) point(x, y float64) {
	t1 := math.NaN()
	if x == m.x1 && y == m.y1 {
		return
	}
	switch m.state {
	case 0:
		m.state = 1
		m.b.moveTo(x, y)
	case 1:
		m.state = 2
	case 2:
		m.state = 3
		t1 = m.slope3(x, y)
		m.segment(m.slope2(t1), t1)
	default:
		t1 = m.slope3(x, y)
		m.segment(m.t0, t1)
	}
	m.x0, m.x1 = m.x1, x
	m.y0, m.y1 = m.y1, y
	m.t0 = t1
}

// segment emits the cubic from (x0,y0) to (x1,y1) with tangents t0 and t1.
func (m *monotone) segment(t0, t1 float64) {
	dx := (m.x1 - m.x0) / 3
	m.b.cubicTo(m.x0+dx, m.y0+dx*t0, m.x1-dx, m.y1-dx*t1, m.x1, m.y1)
}

// slope3 returns the tangent at (x1,y1) given the next point (x2,y2).
func (m *monotone) slope3(x2, y2 float64) float64 {
	h0 := m.x1 - m.x0
	h1 := x2 - m.x1
	s0 := (m.y1 - m.y0) / nonZero(h0, h1)
	s1 := (y2 - m.y1) / nonZero(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 returns the one-sided tangent at an end point.
func (m *monotone) slope2(t float64) float64 {
	h := m.x1 - m.x0
	if h == 0 || math.IsNaN(h) {
		return t
	}
	return (3*(m.y1-m.y0)/h - t) / 2
}

// nonZero returns h, or a signed zero taking its sign from other so that
// the division yields an infinity of the right sign.
func nonZero(h, other float64) float64 {
	if h != 0 {
		return h
	}
	if other < 0 {
		return math.Copysign(0, -1)
	}
	return 0
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// genStep emits horizontal-then-vertical steps. The vertical edge sits at
// fraction t between consecutive x coordinates.
func genStep(b *builder, points []ggraph.Point, t float64) {
	px, py := points[0].X, points[0].Y
	b.moveTo(px, py)
	for _, p := range points[1:] {
		if t <= 0 {
			b.lineTo(px, p.Y)
			b.lineTo(p.X, p.Y)
		} else {
			x1 := px*(1-t) + p.X*t
			b.lineTo(x1, py)
			b.lineTo(x1, p.Y)
		}
		px, py = p.X, p.Y
	}
	if t > 0 && t < 1 {
		b.lineTo(px, py)
	}
}
