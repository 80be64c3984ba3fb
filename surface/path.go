// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"
	"strconv"

	"github.com/gogpu/ggraph"
)

// Verb is a path command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// pointCount returns the number of points a verb consumes.
func (v Verb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	}
	return 0
}

// Path is a sequence of subpaths. Contexts keep it in device space.
type Path struct {
	verbs  []Verb
	points []ggraph.Point
	start  ggraph.Point
	cur    ggraph.Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]ggraph.Point, 0, 32),
	}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt ggraph.Point) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start, p.cur = pt, pt
}

// LineTo adds a line from the current point. An empty path starts a
// subpath at pt instead.
func (p *Path) LineTo(pt ggraph.Point) {
	if len(p.verbs) == 0 {
		p.MoveTo(pt)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, pt)
	p.cur = pt
}

// QuadTo adds a quadratic Bezier curve from the current point.
func (p *Path) QuadTo(c, pt ggraph.Point) {
	if len(p.verbs) == 0 {
		p.MoveTo(c)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, c, pt)
	p.cur = pt
}

// CubicTo adds a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1, c2, pt ggraph.Point) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1, c2, pt)
	p.cur = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.verbs) == 0 || p.verbs[len(p.verbs)-1] == VerbClose {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start, p.cur = ggraph.Point{}, ggraph.Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() ggraph.Point {
	return p.cur
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		verbs:  append([]Verb(nil), p.verbs...),
		points: append([]ggraph.Point(nil), p.points...),
		start:  p.start,
		cur:    p.cur,
	}
}

// Walk calls fn for each command with the points it consumes.
func (p *Path) Walk(fn func(v Verb, pts []ggraph.Point)) {
	i := 0
	for _, v := range p.verbs {
		n := v.pointCount()
		fn(v, p.points[i:i+n])
		i += n
	}
}

// Bounds returns the bounds of all points, including control points.
func (p *Path) Bounds() ggraph.Bounds {
	b := ggraph.EmptyBounds()
	for _, pt := range p.points {
		b = b.Add(pt.X, pt.Y)
	}
	return b
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []ggraph.Point
	Closed bool
}

// Flatten converts curves to line segments within tolerance.
func (p *Path) Flatten(tolerance float64) []Polyline {
	var (
		out []Polyline
		cur *Polyline
		pos ggraph.Point
	)
	p.Walk(func(v Verb, pts []ggraph.Point) {
		switch v {
		case VerbMoveTo:
			out = append(out, Polyline{Points: []ggraph.Point{pts[0]}})
			cur = &out[len(out)-1]
			pos = pts[0]
			return
		case VerbClose:
			if cur != nil {
				cur.Closed = true
				if len(cur.Points) > 0 {
					pos = cur.Points[0]
				}
			}
			cur = nil
			return
		}
		if cur == nil {
			// Drawing after Close continues from the subpath start.
			out = append(out, Polyline{Points: []ggraph.Point{pos}})
			cur = &out[len(out)-1]
		}
		switch v {
		case VerbLineTo:
			cur.Points = append(cur.Points, pts[0])
		case VerbQuadTo:
			q := ggraph.QuadBez{P0: pos, P1: pts[0], P2: pts[1]}
			cur.Points = append(cur.Points, q.Raise().Flatten(tolerance)...)
		case VerbCubicTo:
			c := ggraph.CubicBez{P0: pos, P1: pts[0], P2: pts[1], P3: pts[2]}
			cur.Points = append(cur.Points, c.Flatten(tolerance)...)
		}
		pos = pts[len(pts)-1]
	})
	return out
}

// flattenTolerance is the device-space flattening tolerance for hit tests.
const flattenTolerance = 0.1

// Contains reports whether pt is inside the path using the non-zero
// winding rule. Open subpaths are implicitly closed.
func (p *Path) Contains(pt ggraph.Point) bool {
	winding := 0
	for _, pl := range p.Flatten(flattenTolerance) {
		pts := pl.Points
		n := len(pts)
		if n < 3 {
			continue
		}
		for i := range n {
			a, b := pts[i], pts[(i+1)%n]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && cross(a, b, pt) > 0 {
					winding++
				}
			} else if b.Y <= pt.Y && cross(a, b, pt) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

func cross(a, b, p ggraph.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// StrokeContains reports whether pt lies within width/2 of the path
// outline. Joins and caps are treated as round.
func (p *Path) StrokeContains(pt ggraph.Point, width float64) bool {
	half := width / 2
	if half <= 0 {
		return false
	}
	for _, pl := range p.Flatten(flattenTolerance) {
		pts := pl.Points
		if len(pts) == 1 {
			if pts[0].Distance(pt) <= half {
				return true
			}
			continue
		}
		for i := 1; i < len(pts); i++ {
			if pt.DistanceToSegment(pts[i-1], pts[i]) <= half {
				return true
			}
		}
		if pl.Closed && pt.DistanceToSegment(pts[len(pts)-1], pts[0]) <= half {
			return true
		}
	}
	return false
}

// SVGData formats the path as SVG path data.
func (p *Path) SVGData() string {
	buf := make([]byte, 0, len(p.points)*16)
	num := func(f float64) {
		buf = strconv.AppendFloat(buf, roundTo(f, 3), 'f', -1, 64)
	}
	p.Walk(func(v Verb, pts []ggraph.Point) {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		switch v {
		case VerbMoveTo:
			buf = append(buf, 'M')
		case VerbLineTo:
			buf = append(buf, 'L')
		case VerbQuadTo:
			buf = append(buf, 'Q')
		case VerbCubicTo:
			buf = append(buf, 'C')
		case VerbClose:
			buf = append(buf, 'Z')
		}
		for i, pt := range pts {
			if i > 0 {
				buf = append(buf, ' ')
			}
			num(pt.X)
			buf = append(buf, ' ')
			num(pt.Y)
		}
	})
	return string(buf)
}

func roundTo(f float64, digits int) float64 {
	s := math.Pow(10, float64(digits))
	return math.Round(f*s) / s
}

// arcSegments appends a circular arc as cubic Beziers, each point mapped
// through tf. sweep is signed; its magnitude is at most 2π.
func arcSegments(cx, cy, r, start, sweep float64, tf func(x, y float64) ggraph.Point, fn func(c1, c2, end ggraph.Point)) {
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := range n {
		a1 := start + float64(i)*step
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		fn(
			tf(cx+r*(cos1-k*sin1), cy+r*(sin1+k*cos1)),
			tf(cx+r*(cos2+k*sin2), cy+r*(sin2-k*cos2)),
			tf(cx+r*cos2, cy+r*sin2),
		)
	}
}

// arcSweep returns the signed sweep of a canvas arc from start to end.
func arcSweep(start, end float64, counterclockwise bool) float64 {
	const tau = 2 * math.Pi
	if !counterclockwise {
		d := end - start
		if d >= tau {
			return tau
		}
		d = math.Mod(d, tau)
		if d < 0 {
			d += tau
		}
		return d
	}
	d := start - end
	if d >= tau {
		return -tau
	}
	d = math.Mod(d, tau)
	if d < 0 {
		d += tau
	}
	return -d
}
