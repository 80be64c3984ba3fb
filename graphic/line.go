// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/curve"
)

// segments is shared by every Line so identical point sequences are
// interpolated once.
var segments = curve.NewGenerator()

// Line is a polyline or interpolated curve through its points
// attribute, offset by (dx, dy).
type Line struct {
	Graphic
	seg    *curve.SegContext
	segGen uint64
}

// NewLine creates a line node.
func NewLine(attrs ggraph.Attrs) *Line {
	l := new(Line)
	l.init(TypeLine, attrs, l)
	return l
}

// Points returns the resolved points attribute.
func (l *Line) Points() []ggraph.Point {
	v, _ := l.Value("points")
	return ToPoints(v)
}

// Segments returns the generated path, or nil for fewer than two points.
// The result is regenerated only after a shape invalidation.
func (l *Line) Segments() *curve.SegContext {
	if l.seg != nil && l.segGen == l.shapeGen {
		return l.seg
	}
	kind := curve.Kind(l.String("curveType", string(curve.Linear)))
	if kind == curve.Linear && l.Bool("closePath", false) {
		kind = curve.LinearClosed
	}
	var opts []curve.Option
	if v, ok := l.Value("stepT"); ok {
		if t, ok := ggraph.ToFloat(v); ok {
			opts = append(opts, curve.WithStepT(t))
		}
	}
	l.seg = segments.Generate(l.Points(), kind, opts...)
	l.segGen = l.shapeGen
	return l.seg
}

func (l *Line) valid() bool {
	return len(l.Points()) >= 2
}

func (l *Line) localBounds() ggraph.Bounds {
	seg := l.Segments()
	if seg == nil {
		return ggraph.EmptyBounds()
	}
	return seg.Bounds().
		Translate(l.Float("dx", 0), l.Float("dy", 0)).
		Expand(l.strokeOutset())
}

// Clone returns a copy with its own attribute bag.
func (l *Line) Clone() Node {
	out := NewLine(l.attrs.own)
	l.cloneInto(&out.Graphic)
	return out
}

// ToPoints converts a points attribute value. It accepts []ggraph.Point,
// [][2]float64 and []any holding either form or {x, y} maps as decoded
// from theme files.
func ToPoints(v any) []ggraph.Point {
	switch ps := v.(type) {
	case []ggraph.Point:
		return ps
	case [][2]float64:
		out := make([]ggraph.Point, len(ps))
		for i, p := range ps {
			out[i] = ggraph.Pt(p[0], p[1])
		}
		return out
	case []any:
		out := make([]ggraph.Point, 0, len(ps))
		for _, item := range ps {
			if p, ok := toPoint(item); ok {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}

func toPoint(v any) (ggraph.Point, bool) {
	switch p := v.(type) {
	case ggraph.Point:
		return p, true
	case [2]float64:
		return ggraph.Pt(p[0], p[1]), true
	case []any:
		if len(p) != 2 {
			return ggraph.Point{}, false
		}
		x, okx := ggraph.ToFloat(p[0])
		y, oky := ggraph.ToFloat(p[1])
		return ggraph.Pt(x, y), okx && oky
	case map[string]any:
		x, okx := ggraph.ToFloat(p["x"])
		y, oky := ggraph.ToFloat(p["y"])
		return ggraph.Pt(x, y), okx && oky
	}
	return ggraph.Point{}, false
}
