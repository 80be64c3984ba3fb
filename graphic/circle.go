// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"math"

	"github.com/gogpu/ggraph"
)

// Circle is a circle or circular sector centered at (dx, dy) in local
// space.
type Circle struct {
	Graphic
}

// NewCircle creates a circle node.
func NewCircle(attrs ggraph.Attrs) *Circle {
	c := new(Circle)
	c.init(TypeCircle, attrs, c)
	return c
}

// Radius returns the resolved radius.
func (c *Circle) Radius() float64 {
	return c.Float("radius", 1)
}

func (c *Circle) valid() bool {
	r := c.Radius()
	return finite(r) && r >= 0
}

// localBounds covers the full circle plus half the stroke.
func (c *Circle) localBounds() ggraph.Bounds {
	r := c.Radius()
	if !c.valid() {
		return ggraph.EmptyBounds()
	}
	r += c.strokeOutset()
	cx, cy := c.Float("dx", 0), c.Float("dy", 0)
	return ggraph.NewBounds(cx-r, cy-r, cx+r, cy+r)
}

func (c *Circle) orientedBounds() {}

// Clone returns a copy with its own attribute bag.
func (c *Circle) Clone() Node {
	out := NewCircle(c.attrs.own)
	c.cloneInto(&out.Graphic)
	return out
}

// arcBounds returns the bounds of the arc of radius r around (cx, cy)
// from start to end, which must satisfy start <= end.
func arcBounds(b ggraph.Bounds, cx, cy, r, start, end float64) ggraph.Bounds {
	b = b.Add(cx+r*math.Cos(start), cy+r*math.Sin(start))
	b = b.Add(cx+r*math.Cos(end), cy+r*math.Sin(end))
	first := math.Ceil(start/(math.Pi/2)) * (math.Pi / 2)
	for a := first; a <= end; a += math.Pi / 2 {
		b = b.Add(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return b
}
