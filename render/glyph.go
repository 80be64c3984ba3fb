// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/theme"
)

// glyphRenderer draws a glyph by dispatching to its children's renderers
// in child order. It builds no geometry of its own.
type glyphRenderer struct{}

// NewGlyphRenderer returns the renderer for glyph nodes. Children are
// resolved through DrawContext.Service.
func NewGlyphRenderer() Renderer {
	return glyphRenderer{}
}

func (glyphRenderer) Type() graphic.Type { return graphic.TypeGlyph }

// DrawShape draws every child at the glyph origin shifted by the child's
// own draw offset.
func (glyphRenderer) DrawShape(n graphic.Node, s surface.Context, x, y float64, dc *DrawContext, p Params, fill, stroke Interceptor) {
	g, ok := n.(*graphic.Glyph)
	if !ok || !drawable(n, p) || dc == nil || dc.Service == nil {
		return
	}
	gdx, gdy := g.Float("dx", 0), g.Float("dy", 0)
	p = childParams(g, p)
	for _, c := range g.SubGraphic() {
		r, ok := dc.Service.Renderer(c.Type())
		if !ok {
			ggraph.Logger().Debug("render: no renderer", "type", c.Type())
			continue
		}
		cg := c.Base()
		r.DrawShape(c, s, x-gdx+cg.Float("dx", 0), y-gdy+cg.Float("dy", 0), dc, p, fill, stroke)
	}
}

// Draw draws every child with its own transform, which reads through the
// glyph's position unless the child overrides it.
func (glyphRenderer) Draw(n graphic.Node, dc *DrawContext, p Params) {
	g, ok := n.(*graphic.Glyph)
	if !ok || !drawable(n, p) || dc.Service == nil {
		return
	}
	p = childParams(g, p)
	for _, c := range g.SubGraphic() {
		dc.Service.DrawNode(c, dc, p)
	}
}

// childParams layers the glyph's own theme over the per-draw theme.
// Without a per-draw theme, children already resolve through the glyph.
func childParams(g *graphic.Glyph, p Params) Params {
	if own := g.OwnTheme(); own != nil && p.Theme != nil {
		p.Theme = theme.Merge(p.Theme, own)
	}
	return p
}
