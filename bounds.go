// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import "math"

// Bounds is an axis-aligned bounding box (AABB).
// An empty box has X1 > X2; use EmptyBounds to create one.
type Bounds struct {
	X1, Y1 float64 // minimum corner
	X2, Y2 float64 // maximum corner
}

// EmptyBounds returns a box that contains nothing and absorbs any
// point or box added to it.
func EmptyBounds() Bounds {
	return Bounds{
		X1: math.Inf(1), Y1: math.Inf(1),
		X2: math.Inf(-1), Y2: math.Inf(-1),
	}
}

// NewBounds creates a normalized box spanning two corners.
func NewBounds(x1, y1, x2, y2 float64) Bounds {
	return Bounds{
		X1: math.Min(x1, x2), Y1: math.Min(y1, y2),
		X2: math.Max(x1, x2), Y2: math.Max(y1, y2),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Bounds) IsEmpty() bool {
	return b.X1 > b.X2 || b.Y1 > b.Y2
}

// Width returns the horizontal extent, or 0 for an empty box.
func (b Bounds) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.X2 - b.X1
}

// Height returns the vertical extent, or 0 for an empty box.
func (b Bounds) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Y2 - b.Y1
}

// Add returns the box grown to include the point (x, y).
func (b Bounds) Add(x, y float64) Bounds {
	return Bounds{
		X1: math.Min(b.X1, x), Y1: math.Min(b.Y1, y),
		X2: math.Max(b.X2, x), Y2: math.Max(b.Y2, y),
	}
}

// Union returns the smallest box containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return Bounds{
		X1: math.Min(b.X1, other.X1), Y1: math.Min(b.Y1, other.Y1),
		X2: math.Max(b.X2, other.X2), Y2: math.Max(b.Y2, other.Y2),
	}
}

// Expand grows the box by d on every side.
func (b Bounds) Expand(d float64) Bounds {
	if b.IsEmpty() {
		return b
	}
	return Bounds{X1: b.X1 - d, Y1: b.Y1 - d, X2: b.X2 + d, Y2: b.Y2 + d}
}

// Translate moves the box by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	if b.IsEmpty() {
		return b
	}
	return Bounds{X1: b.X1 + dx, Y1: b.Y1 + dy, X2: b.X2 + dx, Y2: b.Y2 + dy}
}

// ContainsPoint reports whether p lies inside or on the edge of the box.
func (b Bounds) ContainsPoint(p Point) bool {
	return p.X >= b.X1 && p.X <= b.X2 && p.Y >= b.Y1 && p.Y <= b.Y2
}

// Corners returns the four corners in clockwise order starting at (X1, Y1).
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{X: b.X1, Y: b.Y1},
		{X: b.X2, Y: b.Y1},
		{X: b.X2, Y: b.Y2},
		{X: b.X1, Y: b.Y2},
	}
}

// Transform returns the axis-aligned box of b after applying m.
func (b Bounds) Transform(m Matrix) Bounds {
	if b.IsEmpty() {
		return b
	}
	if m.IsIdentity() {
		return b
	}
	out := EmptyBounds()
	for _, c := range b.Corners() {
		p := m.TransformPoint(c)
		out = out.Add(p.X, p.Y)
	}
	return out
}

// OBB is an oriented bounding box: a local rectangle placed by a matrix.
type OBB struct {
	Local  Bounds
	Matrix Matrix
}

// Corners returns the four corners of the box in world space.
func (o OBB) Corners() [4]Point {
	cs := o.Local.Corners()
	for i := range cs {
		cs[i] = o.Matrix.TransformPoint(cs[i])
	}
	return cs
}

// Angle returns the rotation of the box's local x axis in radians.
func (o OBB) Angle() float64 {
	return math.Atan2(o.Matrix.D, o.Matrix.A)
}

// AABB returns the axis-aligned box enclosing the oriented box.
func (o OBB) AABB() Bounds {
	return o.Local.Transform(o.Matrix)
}

// ContainsPoint reports whether p lies inside the oriented box.
func (o OBB) ContainsPoint(p Point) bool {
	if o.Local.IsEmpty() {
		return false
	}
	return o.Local.ContainsPoint(o.Matrix.Invert().TransformPoint(p))
}
