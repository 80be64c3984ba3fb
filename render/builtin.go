// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
)

// Background fills the shape with its background paint before the fill
// and stroke. It paints nothing during a pick pass.
type Background struct{}

func (Background) Name() string { return "background" }
func (Background) Phase() Phase { return BeforeFillStroke }
func (Background) Order() int   { return 0 }

// DrawShape implements Contribution.
func (Background) DrawShape(sh *Shape) {
	if sh.Picking() {
		return
	}
	v, _ := sh.Attrs.Value("background")
	if !graphic.PaintSet(v) {
		return
	}
	p, ok := paintOf(v, sh.X, sh.Y)
	if !ok {
		return
	}
	s := sh.Surface
	s.SetFillStyle(p)
	s.SetGlobalAlpha(sh.Attrs.Float("opacity", 1) * sh.Attrs.Float("backgroundOpacity", 1))
	s.Fill()
}

// Texture covers the filled shape with a regular pattern of small marks.
// The texture attribute selects the mark: "circle", "rect", "grid",
// "horizontal-line" or "vertical-line". Cells are laid out in device
// space and kept when their center lies inside the shape.
type Texture struct{}

func (Texture) Name() string { return "texture" }
func (Texture) Phase() Phase { return AfterFillStroke }
func (Texture) Order() int   { return 0 }

// DrawShape implements Contribution.
func (Texture) DrawShape(sh *Shape) {
	kind := sh.Attrs.String("texture", "")
	if sh.Picking() || kind == "" || !sh.Flags.DoFill {
		return
	}
	size := sh.Attrs.Float("textureSize", 10)
	pad := sh.Attrs.Float("texturePadding", 2)
	if size <= 0 || size <= 2*pad {
		return
	}
	c, ok := surface.ParseColor(sh.Attrs.String("textureColor", "rgba(0,0,0,0.4)"))
	if !ok {
		return
	}

	s := sh.Surface
	shape := s.Path().Clone()
	b := shape.Bounds()
	if b.IsEmpty() {
		return
	}

	s.Save()
	defer s.Restore()
	s.ResetTransform()
	s.SetGlobalAlpha(sh.Attrs.Float("opacity", 1))
	s.BeginPath()

	x0 := math.Floor(b.X1/size) * size
	y0 := math.Floor(b.Y1/size) * size
	mark := size - 2*pad
	for y := y0; y < b.Y2; y += size {
		for x := x0; x < b.X2; x += size {
			cx, cy := x+size/2, y+size/2
			if !shape.Contains(ggraph.Pt(cx, cy)) {
				continue
			}
			switch kind {
			case "circle":
				s.MoveTo(cx+mark/2, cy)
				s.Arc(cx, cy, mark/2, 0, 2*math.Pi, false)
				s.ClosePath()
			case "grid":
				s.Rect(x, y, size, pad)
				s.Rect(x, y, pad, size)
			case "horizontal-line":
				s.Rect(x, cy-pad/2, size, pad)
			case "vertical-line":
				s.Rect(cx-pad/2, y, pad, size)
			default:
				s.Rect(x+pad, y+pad, mark, mark)
			}
		}
	}
	s.SetFillStyle(surface.SolidPaint(c))
	s.Fill()
}

// Border strokes outlines outside and inside the shape, configured by
// the outerBorder and innerBorder attributes. Each is a map with
// distance, stroke (a color) and lineWidth. Lines have no border.
type Border struct{}

func (Border) Name() string { return "border" }
func (Border) Phase() Phase { return AfterFillStroke }
func (Border) Order() int   { return 0 }

// DrawShape implements Contribution.
func (Border) DrawShape(sh *Shape) {
	if sh.Picking() {
		return
	}
	for _, side := range []struct {
		key  string
		sign float64
	}{{"outerBorder", 1}, {"innerBorder", -1}} {
		v, ok := sh.Attrs.Value(side.key)
		if !ok {
			continue
		}
		cfg, ok := borderAttrs(v)
		if !ok {
			continue
		}
		drawBorder(sh, cfg, side.sign)
	}
}

func borderAttrs(v any) (ggraph.Attrs, bool) {
	switch m := v.(type) {
	case ggraph.Attrs:
		return m, m != nil
	case map[string]any:
		return ggraph.Attrs(m), m != nil
	}
	return nil, false
}

func drawBorder(sh *Shape, cfg ggraph.Attrs, sign float64) {
	d, _ := cfg.Float("distance")
	d *= sign
	width, ok := cfg.Float("lineWidth")
	if !ok {
		width = 1
	}
	color, _ := cfg.String("stroke")
	if color == "" {
		color = sh.Attrs.String("strokeColor", "#000000")
	}
	c, ok := surface.ParseColor(color)
	if !ok || width <= 0 {
		return
	}

	s := sh.Surface
	s.BeginPath()
	switch n := sh.Node.(type) {
	case *graphic.Circle:
		r := n.Radius() + d
		if r <= 0 {
			return
		}
		s.Arc(sh.X, sh.Y, r, 0, 2*math.Pi, false)
		s.ClosePath()
	case *graphic.Arc:
		inner, outer := n.Radii()
		start, end := n.Angles()
		s.Arc(sh.X, sh.Y, outer+d, start, end, false)
		if in := inner - d; in > 0 {
			s.Arc(sh.X, sh.Y, in, end, start, true)
		} else {
			s.LineTo(sh.X, sh.Y)
		}
		s.ClosePath()
	case *graphic.Rect:
		box := n.Box()
		dx, dy := n.Float("dx", 0), n.Float("dy", 0)
		w, h := box.Width()+2*d, box.Height()+2*d
		if w <= 0 || h <= 0 {
			return
		}
		s.Rect(sh.X+box.X1-dx-d, sh.Y+box.Y1-dy-d, w, h)
	case *graphic.Text:
		box := n.Layout().Box.Expand(d)
		if box.IsEmpty() {
			return
		}
		ox, oy := textOffset(sh)
		s.Rect(box.X1+ox, box.Y1+oy, box.Width(), box.Height())
	default:
		return
	}
	s.SetStrokeStyle(surface.SolidPaint(c))
	s.SetLineWidth(width)
	s.SetGlobalAlpha(sh.Attrs.Float("opacity", 1))
	s.Stroke()
}
