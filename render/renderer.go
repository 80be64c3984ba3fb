// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sync"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/theme"
)

// Interceptor replaces the painting of a fill or stroke. It runs with the
// node's path current on s. Returning true stops the draw procedure.
type Interceptor func(s surface.Context, r graphic.Resolver) bool

// Params are per-draw parameters.
type Params struct {
	// Theme, when non-nil, supplies defaults in place of the node's own
	// theme. Use theme.Merge to layer an override over a base.
	Theme *theme.Theme
}

// DrawContext is shared by every node drawn in one pass.
type DrawContext struct {
	Surface surface.Context

	// Service resolves renderers for composite nodes.
	Service *Service

	// Base is the transform every node transform is applied on top of.
	Base ggraph.Matrix
}

// Renderer draws one node type.
type Renderer interface {
	// Type returns the node type this renderer draws.
	Type() graphic.Type

	// DrawShape runs the draw procedure with the shape origin at (x, y) in
	// the current transform of s. Non-nil interceptors replace fill and
	// stroke painting.
	DrawShape(n graphic.Node, s surface.Context, x, y float64, dc *DrawContext, p Params, fill, stroke Interceptor)

	// Draw places the node by its transform and draws it on dc.Surface.
	Draw(n graphic.Node, dc *DrawContext, p Params)
}

// shapeRenderer implements the draw procedure for simple node types.
// path builds the node's geometry; paintFill and paintStroke, when set,
// replace the default Fill and Stroke calls.
type shapeRenderer struct {
	typ         graphic.Type
	path        func(sh *Shape)
	paintFill   func(sh *Shape)
	paintStroke func(sh *Shape)

	provider *Provider
	once     sync.Once
	before   []Contribution
	after    []Contribution
}

func (sr *shapeRenderer) Type() graphic.Type { return sr.typ }

func (sr *shapeRenderer) contributions() (before, after []Contribution) {
	sr.once.Do(func() {
		if sr.provider == nil {
			return
		}
		for _, c := range sr.provider.Contributions(sr.typ) {
			if c.Phase() == AfterFillStroke {
				sr.after = append(sr.after, c)
			} else {
				sr.before = append(sr.before, c)
			}
		}
	})
	return sr.before, sr.after
}

// DrawShape implements Renderer.
func (sr *shapeRenderer) DrawShape(n graphic.Node, s surface.Context, x, y float64, dc *DrawContext, p Params, fill, stroke Interceptor) {
	r := n.Base().Resolve(p.Theme)
	if !n.Valid() || !r.Bool("visible", true) {
		return
	}

	f := flags(r)
	if !f.DoFill && !f.DoStroke {
		return
	}
	background, _ := r.Value("background")
	if !f.FillVisible && !f.StrokeVisible && fill == nil && stroke == nil && !graphic.PaintSet(background) {
		return
	}

	sh := &Shape{
		Node: n, Surface: s, X: x, Y: y,
		Flags: f, Attrs: r, Draw: dc,
		Fill: fill, Stroke: stroke,
	}

	s.BeginPath()
	sr.path(sh)

	before, after := sr.contributions()
	for _, c := range before {
		c.DrawShape(sh)
	}

	shadowed := false
	if !sh.Picking() {
		shadowed = applyShadow(s, r)
	}

	if f.DoFill {
		if fill != nil {
			if fill(s, r) {
				return
			}
		} else if f.FillVisible {
			if sr.paintFill != nil {
				sr.paintFill(sh)
			} else if applyFill(s, r, x, y) {
				s.Fill()
			}
		}
	}

	if f.DoStroke {
		s.SetLineWidth(r.Float("lineWidth", 1))
		if stroke != nil {
			if stroke(s, r) {
				return
			}
		} else if f.StrokeVisible {
			if sr.paintStroke != nil {
				sr.paintStroke(sh)
			} else if applyStroke(s, r, x, y) {
				s.Stroke()
			}
		}
	}

	if shadowed {
		s.(surface.ShadowContext).SetShadow(surface.Shadow{})
	}

	for _, c := range after {
		c.DrawShape(sh)
	}
}

// Draw implements Renderer.
func (sr *shapeRenderer) Draw(n graphic.Node, dc *DrawContext, p Params) {
	if !drawable(n, p) {
		return
	}
	s := dc.Surface
	s.Save()
	defer s.Restore()

	x, y := Origin(s, n.Base(), dc.Base)
	sr.DrawShape(n, s, x, y, dc, p, nil, nil)
}

// Origin sets the transform of s for drawing g on top of base and
// returns the shape origin. A translate-only node keeps base and moves
// the origin instead of composing matrices.
func Origin(s surface.Context, g *graphic.Graphic, base ggraph.Matrix) (x, y float64) {
	m := g.Transform()
	dx, dy := g.Float("dx", 0), g.Float("dy", 0)
	if m.OnlyTranslate() {
		s.SetTransform(base)
		return m.C + dx, m.F + dy
	}
	s.SetTransform(base.Multiply(m))
	return dx, dy
}

func drawable(n graphic.Node, p Params) bool {
	return n.Valid() && n.Base().Resolve(p.Theme).Bool("visible", true)
}
