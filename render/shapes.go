// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/textmeasure"
)

// NewCircleRenderer returns the renderer for circle nodes.
func NewCircleRenderer(p *Provider) Renderer {
	return &shapeRenderer{typ: graphic.TypeCircle, path: circlePath, provider: p}
}

// NewArcRenderer returns the renderer for arc nodes.
func NewArcRenderer(p *Provider) Renderer {
	return &shapeRenderer{typ: graphic.TypeArc, path: arcPath, provider: p}
}

// NewRectRenderer returns the renderer for rect nodes.
func NewRectRenderer(p *Provider) Renderer {
	return &shapeRenderer{typ: graphic.TypeRect, path: rectPath, provider: p}
}

// NewLineRenderer returns the renderer for line nodes.
func NewLineRenderer(p *Provider) Renderer {
	return &shapeRenderer{typ: graphic.TypeLine, path: linePath, provider: p}
}

// NewTextRenderer returns the renderer for text nodes. The path is the
// text box, so picking tests the box; painting draws the glyphs on
// contexts that implement surface.TextContext.
func NewTextRenderer(p *Provider) Renderer {
	return &shapeRenderer{
		typ:         graphic.TypeText,
		path:        textPath,
		paintFill:   textFill,
		paintStroke: func(*Shape) {},
		provider:    p,
	}
}

// Path builders read geometry from the node, not from Shape.Attrs, so a
// per-draw theme restyles a node without moving it off its bounds.

func circlePath(sh *Shape) {
	c := sh.Node.(*graphic.Circle)
	start, end := c.Float("startAngle", 0), c.Float("endAngle", 2*math.Pi)
	sh.Surface.Arc(sh.X, sh.Y, c.Radius(), start, end, false)
	sh.Surface.ClosePath()
}

func arcPath(sh *Shape) {
	a := sh.Node.(*graphic.Arc)
	inner, outer := a.Radii()
	start, end := a.Angles()
	s := sh.Surface

	s.Arc(sh.X, sh.Y, outer, start, end, false)
	if inner > 0 {
		s.Arc(sh.X, sh.Y, inner, end, start, true)
	} else {
		s.LineTo(sh.X, sh.Y)
	}
	s.ClosePath()
}

func rectPath(sh *Shape) {
	rc := sh.Node.(*graphic.Rect)
	box := rc.Box()
	dx, dy := rc.Float("dx", 0), rc.Float("dy", 0)
	x, y := sh.X+box.X1-dx, sh.Y+box.Y1-dy
	w, h := box.Width(), box.Height()

	r := math.Min(rc.Float("cornerRadius", 0), math.Min(w, h)/2)
	if r <= 0 {
		sh.Surface.Rect(x, y, w, h)
		return
	}
	roundRect(sh.Surface, x, y, w, h, r)
}

func roundRect(s surface.Context, x, y, w, h, r float64) {
	s.MoveTo(x+r, y)
	s.LineTo(x+w-r, y)
	s.Arc(x+w-r, y+r, r, -math.Pi/2, 0, false)
	s.LineTo(x+w, y+h-r)
	s.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, false)
	s.LineTo(x+r, y+h)
	s.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, false)
	s.LineTo(x, y+r)
	s.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, false)
	s.ClosePath()
}

func linePath(sh *Shape) {
	sh.Node.(*graphic.Line).Segments().Replay(sh.Surface, sh.X, sh.Y)
}

// textOffset maps local text coordinates to the draw origin.
func textOffset(sh *Shape) (ox, oy float64) {
	g := sh.Node.Base()
	return sh.X - g.Float("dx", 0), sh.Y - g.Float("dy", 0)
}

func textPath(sh *Shape) {
	l := sh.Node.(*graphic.Text).Layout()
	ox, oy := textOffset(sh)
	sh.Surface.Rect(l.Box.X1+ox, l.Box.Y1+oy, l.Box.Width(), l.Box.Height())
}

func textFill(sh *Shape) {
	tc, ok := sh.Surface.(surface.TextContext)
	if !ok {
		ggraph.Logger().Debug("render: surface cannot draw text", "type", sh.Node.Type())
		return
	}
	if !applyFill(tc, sh.Attrs, sh.X, sh.Y) {
		return
	}

	l := sh.Node.(*graphic.Text).Layout()
	ox, oy := textOffset(sh)
	tc.SetFont(l.Style)
	if !l.Vertical {
		tc.FillText(l.Text, l.Box.X1+ox, l.Baseline+oy)
		return
	}
	verticalText(tc, l, ox, oy)
}

// verticalText draws runs top to bottom. Fixed runs stand upright in an
// em box; measured runs are rotated a quarter turn clockwise.
func verticalText(tc surface.TextContext, l *graphic.TextLayout, ox, oy float64) {
	fs := l.Style.FontSize
	x := l.Box.X1 + ox
	y := l.Box.Y1 + oy
	for _, run := range l.Runs {
		if run.Direction == textmeasure.RunFixed {
			tc.FillText(run.Text, x, y+fs*graphic.AlphabeticAscent)
			y += run.Width
			continue
		}
		m := tc.Transform()
		tc.SetTransform(m.Multiply(ggraph.Translate(x+fs/2, y)).Multiply(ggraph.Rotate(math.Pi / 2)))
		tc.FillText(run.Text, 0, fs*(graphic.AlphabeticAscent-0.5))
		tc.SetTransform(m)
		y += run.Width
	}
}
