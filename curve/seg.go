// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package curve

import "github.com/gogpu/ggraph"

// Kind selects the interpolation used by Generate.
type Kind string

// Curve kinds. Unknown kinds fall back to Linear.
const (
	Linear       Kind = "linear"
	LinearClosed Kind = "linearClosed"
	Basis        Kind = "basis"
	MonotoneX    Kind = "monotoneX"
	MonotoneY    Kind = "monotoneY"
	Step         Kind = "step"
	StepBefore   Kind = "stepBefore"
	StepAfter    Kind = "stepAfter"
)

// Direction is the principal axis of a point sequence.
type Direction uint8

const (
	DirectionX Direction = iota
	DirectionY
)

func (d Direction) String() string {
	if d == DirectionY {
		return "y"
	}
	return "x"
}

// Op is a path command type.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpCubicTo
	OpClose
)

// Command is a single path command. MoveTo and LineTo use Pts[0]; CubicTo
// uses Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Command struct {
	Op  Op
	Pts [3]ggraph.Point
}

// End returns the point the pen is at after the command.
func (c Command) End() ggraph.Point {
	if c.Op == OpCubicTo {
		return c.Pts[2]
	}
	return c.Pts[0]
}

// PathBuilder receives replayed commands. surface.Context satisfies it.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	ClosePath()
}

// SegContext is a renderer-agnostic path produced by Generate.
// It is immutable once returned.
type SegContext struct {
	Kind      Kind
	Direction Direction
	Commands  []Command
}

// Replay emits the commands into b, shifted by (dx, dy).
func (s *SegContext) Replay(b PathBuilder, dx, dy float64) {
	if s == nil {
		return
	}
	for _, c := range s.Commands {
		switch c.Op {
		case OpMoveTo:
			b.MoveTo(c.Pts[0].X+dx, c.Pts[0].Y+dy)
		case OpLineTo:
			b.LineTo(c.Pts[0].X+dx, c.Pts[0].Y+dy)
		case OpCubicTo:
			b.BezierCurveTo(
				c.Pts[0].X+dx, c.Pts[0].Y+dy,
				c.Pts[1].X+dx, c.Pts[1].Y+dy,
				c.Pts[2].X+dx, c.Pts[2].Y+dy,
			)
		case OpClose:
			b.ClosePath()
		}
	}
}

// Bounds returns the tight bounds of the path, including cubic extrema.
func (s *SegContext) Bounds() ggraph.Bounds {
	b := ggraph.EmptyBounds()
	if s == nil {
		return b
	}
	var cur ggraph.Point
	for _, c := range s.Commands {
		switch c.Op {
		case OpMoveTo, OpLineTo:
			b = b.Add(c.Pts[0].X, c.Pts[0].Y)
		case OpCubicTo:
			cb := ggraph.CubicBez{P0: cur, P1: c.Pts[0], P2: c.Pts[1], P3: c.Pts[2]}
			b = b.Union(cb.BoundingBox())
		}
		if c.Op != OpClose {
			cur = c.End()
		}
	}
	return b
}

// Length returns the approximate arc length of the path.
func (s *SegContext) Length() float64 {
	if s == nil {
		return 0
	}
	var (
		total      float64
		cur, start ggraph.Point
	)
	for _, c := range s.Commands {
		switch c.Op {
		case OpMoveTo:
			start = c.Pts[0]
		case OpLineTo:
			total += cur.Distance(c.Pts[0])
		case OpCubicTo:
			cb := ggraph.CubicBez{P0: cur, P1: c.Pts[0], P2: c.Pts[1], P3: c.Pts[2]}
			pts := cb.Flatten(0.1)
			prev := cur
			for _, p := range pts {
				total += prev.Distance(p)
				prev = p
			}
		case OpClose:
			total += cur.Distance(start)
			cur = start
			continue
		}
		cur = c.End()
	}
	return total
}

// builder collects commands while a curve is generated. A reflected
// builder swaps x and y, which turns MonotoneX into MonotoneY.
type builder struct {
	cmds    []Command
	reflect bool
}

func (b *builder) pt(x, y float64) ggraph.Point {
	if b.reflect {
		return ggraph.Pt(y, x)
	}
	return ggraph.Pt(x, y)
}

func (b *builder) moveTo(x, y float64) {
	b.cmds = append(b.cmds, Command{Op: OpMoveTo, Pts: [3]ggraph.Point{b.pt(x, y)}})
}

func (b *builder) lineTo(x, y float64) {
	b.cmds = append(b.cmds, Command{Op: OpLineTo, Pts: [3]ggraph.Point{b.pt(x, y)}})
}

func (b *builder) cubicTo(x1, y1, x2, y2, x, y float64) {
	b.cmds = append(b.cmds, Command{Op: OpCubicTo, Pts: [3]ggraph.Point{b.pt(x1, y1), b.pt(x2, y2), b.pt(x, y)}})
}

func (b *builder) closePath() {
	b.cmds = append(b.cmds, Command{Op: OpClose})
}
