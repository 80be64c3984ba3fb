// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/render"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/theme"
)

// Params are the inputs of one pick query.
type Params struct {
	// PickContext is the scratch surface for exact tests. Without one,
	// only imprecise nodes can be picked.
	PickContext surface.Context

	// Theme is passed to the renderer as the per-draw theme.
	Theme *theme.Theme
}

// Picker tests points against one node type. Points are in the
// coordinate space the nodes' transforms map into.
type Picker interface {
	Type() graphic.Type
	Contains(n graphic.Node, pt ggraph.Point, p Params) bool
}

// shapePicker tests a simple node by rerunning its renderer's draw
// procedure with hit-testing interceptors in place of painting.
type shapePicker struct {
	renderer render.Renderer
	service  *render.Service
}

// NewShapePicker returns a picker that hit-tests nodes through r.
func NewShapePicker(r render.Renderer, svc *render.Service) Picker {
	return &shapePicker{renderer: r, service: svc}
}

func (sp *shapePicker) Type() graphic.Type { return sp.renderer.Type() }

// Contains implements Picker.
func (sp *shapePicker) Contains(n graphic.Node, pt ggraph.Point, p Params) bool {
	if !n.AABBBounds().ContainsPoint(pt) {
		return false
	}
	g := n.Base()
	if g.PickMode() == graphic.PickImprecise {
		return true
	}
	pc := p.PickContext
	if pc == nil {
		ggraph.Logger().Debug("picker: no pick context", "type", n.Type())
		return false
	}

	pc.Save()
	defer pc.Restore()

	base := ggraph.Identity()
	x, y := render.Origin(pc, g, base)

	picked := false
	fill := func(s surface.Context, _ graphic.Resolver) bool {
		if !picked {
			picked = s.IsPointInPath(pt.X, pt.Y)
		}
		return picked
	}
	stroke := func(s surface.Context, r graphic.Resolver) bool {
		if !picked {
			s.SetLineWidth(r.Float("lineWidth", 1))
			picked = s.IsPointInStroke(pt.X, pt.Y)
		}
		return picked
	}

	dc := &render.DrawContext{Surface: pc, Service: sp.service, Base: base}
	sp.renderer.DrawShape(n, pc, x, y, dc, render.Params{Theme: p.Theme}, fill, stroke)
	return picked
}

// glyphPicker tests a glyph through its children's pickers.
type glyphPicker struct {
	lookup func(graphic.Type) (Picker, bool)
}

func (glyphPicker) Type() graphic.Type { return graphic.TypeGlyph }

// Contains implements Picker.
func (gp glyphPicker) Contains(n graphic.Node, pt ggraph.Point, p Params) bool {
	g, ok := n.(*graphic.Glyph)
	if !ok || !g.AABBBounds().ContainsPoint(pt) {
		return false
	}
	if g.PickMode() == graphic.PickImprecise {
		return true
	}
	for _, c := range g.SubGraphic() {
		cp, ok := gp.lookup(c.Type())
		if ok && cp.Contains(c, pt, p) {
			return true
		}
	}
	return false
}
