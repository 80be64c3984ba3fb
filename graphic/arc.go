// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"math"

	"github.com/gogpu/ggraph"
)

// Arc is an annular sector centered at (dx, dy). Angles are in radians,
// clockwise from the positive x axis in y-down space.
type Arc struct {
	Graphic
}

// NewArc creates an arc node.
func NewArc(attrs ggraph.Attrs) *Arc {
	a := new(Arc)
	a.init(TypeArc, attrs, a)
	return a
}

// Radii returns the resolved inner and outer radius, inner <= outer.
func (a *Arc) Radii() (inner, outer float64) {
	inner, outer = a.Float("innerRadius", 0), a.Float("outerRadius", 1)
	if inner > outer {
		inner, outer = outer, inner
	}
	return inner, outer
}

// Angles returns the resolved start and end angles. A sweep of 2π or more
// is clamped to a full turn.
func (a *Arc) Angles() (start, end float64) {
	start, end = a.Float("startAngle", 0), a.Float("endAngle", 2*math.Pi)
	if math.Abs(end-start) > 2*math.Pi {
		end = start + math.Copysign(2*math.Pi, end-start)
	}
	return start, end
}

func (a *Arc) valid() bool {
	inner, outer := a.Radii()
	start, end := a.Angles()
	return finite(inner, outer, start, end) && inner >= 0
}

func (a *Arc) localBounds() ggraph.Bounds {
	if !a.valid() {
		return ggraph.EmptyBounds()
	}
	inner, outer := a.Radii()
	start, end := a.Angles()
	if start > end {
		start, end = end, start
	}
	cx, cy := a.Float("dx", 0), a.Float("dy", 0)

	b := arcBounds(ggraph.EmptyBounds(), cx, cy, outer, start, end)
	if inner > 0 {
		b = arcBounds(b, cx, cy, inner, start, end)
	} else {
		b = b.Add(cx, cy)
	}
	return b.Expand(a.strokeOutset())
}

func (a *Arc) orientedBounds() {}

// Clone returns a copy with its own attribute bag.
func (a *Arc) Clone() Node {
	out := NewArc(a.attrs.own)
	a.cloneInto(&out.Graphic)
	return out
}
