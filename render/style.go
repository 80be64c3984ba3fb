// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
)

// ResolvePaint converts a fill or stroke attribute value to a paint. true
// selects the color attribute named by colorKey. Strings are parsed as
// colors. Gradients are shifted by (x, y) so their coordinates are
// relative to the shape origin.
func ResolvePaint(r graphic.Resolver, key, colorKey string, x, y float64) (surface.Paint, bool) {
	v, _ := r.Value(key)
	if b, ok := v.(bool); ok {
		if !b {
			return surface.Paint{}, false
		}
		v, _ = r.Value(colorKey)
	}
	return paintOf(v, x, y)
}

func paintOf(v any, x, y float64) (surface.Paint, bool) {
	switch p := v.(type) {
	case string:
		c, ok := surface.ParseColor(p)
		return surface.SolidPaint(c), ok
	case color.NRGBA:
		return surface.SolidPaint(p), true
	case color.Color:
		return surface.SolidPaint(color.NRGBAModel.Convert(p).(color.NRGBA)), true
	case surface.Paint:
		if p.Gradient != nil {
			p.Gradient = shiftGradient(p.Gradient, x, y)
		}
		return p, true
	case *surface.Gradient:
		if p == nil {
			return surface.Paint{}, false
		}
		return surface.Paint{Gradient: shiftGradient(p, x, y)}, true
	case surface.Gradient:
		return surface.Paint{Gradient: shiftGradient(&p, x, y)}, true
	}
	return surface.Paint{}, false
}

func shiftGradient(g *surface.Gradient, x, y float64) *surface.Gradient {
	out := *g
	out.X0 += x
	out.Y0 += y
	out.X1 += x
	out.Y1 += y
	return &out
}

// flags computes the fill and stroke decisions for a node.
func flags(r graphic.Resolver) Flags {
	opacity := r.Float("opacity", 1)
	fill, _ := r.Value("fill")
	stroke, _ := r.Value("stroke")
	background, _ := r.Value("background")
	fillSet, strokeSet := graphic.PaintSet(fill), graphic.PaintSet(stroke)

	return Flags{
		DoFill:        fillSet || graphic.PaintSet(background),
		DoStroke:      strokeSet,
		FillVisible:   fillSet && opacity*r.Float("fillOpacity", 1) > 0,
		StrokeVisible: strokeSet && opacity*r.Float("strokeOpacity", 1) > 0 && r.Float("lineWidth", 1) > 0,
	}
}

// applyFill sets the fill paint and alpha. It reports false when the
// paint cannot be resolved.
func applyFill(s surface.Context, r graphic.Resolver, x, y float64) bool {
	p, ok := ResolvePaint(r, "fill", "fillColor", x, y)
	if !ok {
		ggraph.Logger().Debug("render: unresolved fill", "value", valueOf(r, "fill"))
		return false
	}
	s.SetFillStyle(p)
	s.SetGlobalAlpha(r.Float("opacity", 1) * r.Float("fillOpacity", 1))
	return true
}

// applyStroke sets the stroke paint, alpha and line style.
func applyStroke(s surface.Context, r graphic.Resolver, x, y float64) bool {
	p, ok := ResolvePaint(r, "stroke", "strokeColor", x, y)
	if !ok {
		ggraph.Logger().Debug("render: unresolved stroke", "value", valueOf(r, "stroke"))
		return false
	}
	s.SetStrokeStyle(p)
	s.SetGlobalAlpha(r.Float("opacity", 1) * r.Float("strokeOpacity", 1))
	s.SetLineCap(surface.ParseLineCap(r.String("lineCap", "butt")))
	s.SetLineJoin(surface.ParseLineJoin(r.String("lineJoin", "miter")))
	return true
}

// applyShadow sets the node's shadow on contexts that support shadows.
// It reports whether a shadow was set.
func applyShadow(s surface.Context, r graphic.Resolver) bool {
	sc, ok := s.(surface.ShadowContext)
	if !ok {
		return false
	}
	sh := surface.Shadow{
		Blur:    r.Float("shadowBlur", 0),
		OffsetX: r.Float("shadowOffsetX", 0),
		OffsetY: r.Float("shadowOffsetY", 0),
	}
	c, ok := surface.ParseColor(r.String("shadowColor", "#000000"))
	if !ok {
		return false
	}
	sh.Color = c
	if sh.IsZero() {
		return false
	}
	sc.SetShadow(sh)
	return true
}

func valueOf(r graphic.Resolver, key string) any {
	v, _ := r.Value(key)
	return v
}
