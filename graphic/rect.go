// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import "github.com/gogpu/ggraph"

// Rect is a rectangle with its top-left corner at (dx, dy). Negative
// sizes extend left or up.
type Rect struct {
	Graphic
}

// NewRect creates a rectangle node.
func NewRect(attrs ggraph.Attrs) *Rect {
	r := new(Rect)
	r.init(TypeRect, attrs, r)
	return r
}

// Box returns the local rectangle without stroke.
func (r *Rect) Box() ggraph.Bounds {
	x, y := r.Float("dx", 0), r.Float("dy", 0)
	return ggraph.NewBounds(x, y, x+r.Float("width", 0), y+r.Float("height", 0))
}

func (r *Rect) valid() bool {
	return finite(r.Float("width", 0), r.Float("height", 0))
}

func (r *Rect) localBounds() ggraph.Bounds {
	if !r.valid() {
		return ggraph.EmptyBounds()
	}
	return r.Box().Expand(r.strokeOutset())
}

func (r *Rect) orientedBounds() {}

// Clone returns a copy with its own attribute bag.
func (r *Rect) Clone() Node {
	out := NewRect(r.attrs.own)
	r.cloneInto(&out.Graphic)
	return out
}
