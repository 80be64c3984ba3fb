// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/textmeasure"
)

// SVGContext writes every fill and stroke as an SVG path element.
// Gradients become objectBoundingBox gradient definitions; shadows are
// not supported.
type SVGContext struct {
	base
	buf       bytes.Buffer
	canvas    *svg.SVG
	gradients int
	ended     bool
}

// NewSVGContext creates an SVG document of the given size.
func NewSVGContext(width, height int) *SVGContext {
	c := &SVGContext{base: newBase(width, height)}
	c.canvas = svg.New(&c.buf)
	c.canvas.Start(width, height)
	return c
}

// Clear paints a full-size background rectangle.
func (c *SVGContext) Clear(col color.NRGBA) {
	c.canvas.Rect(0, 0, c.width, c.height, "fill:"+HexColor(col)+";fill-opacity:"+opacity(col, 1))
}

// Fill implements Context.
func (c *SVGContext) Fill() {
	if c.path.IsEmpty() {
		return
	}
	style := "fill:" + c.paintRef(c.st.fill) + ";fill-opacity:" + paintOpacity(c.st.fill, c.st.alpha) + ";stroke:none"
	c.canvas.Path(c.path.SVGData(), style)
}

// Stroke implements Context.
func (c *SVGContext) Stroke() {
	if c.path.IsEmpty() {
		return
	}
	style := strings.Join([]string{
		"fill:none",
		"stroke:" + c.paintRef(c.st.stroke),
		"stroke-opacity:" + paintOpacity(c.st.stroke, c.st.alpha),
		"stroke-width:" + strconv.FormatFloat(roundTo(c.deviceLineWidth(), 3), 'f', -1, 64),
		"stroke-linecap:" + c.st.lineCap.String(),
		"stroke-linejoin:" + c.st.lineJoin.String(),
	}, ";")
	c.canvas.Path(c.path.SVGData(), style)
}

// paintRef returns a color or a url(#id) reference to a gradient
// definition written just before the element.
func (c *SVGContext) paintRef(p Paint) string {
	if p.Gradient == nil {
		return HexColor(p.Color)
	}
	c.gradients++
	id := fmt.Sprintf("g%d", c.gradients)
	bb := c.path.Bounds()
	stops := make([]svg.Offcolor, len(p.Gradient.Stops))
	for i, s := range p.Gradient.Stops {
		stops[i] = svg.Offcolor{
			Offset:  percent(s.Offset),
			Color:   HexColor(s.Color),
			Opacity: float64(s.Color.A) / 255,
		}
	}

	g := p.Gradient
	m := c.st.transform
	p0 := m.TransformPoint(ggraph.Pt(g.X0, g.Y0))
	p1 := m.TransformPoint(ggraph.Pt(g.X1, g.Y1))
	rel := func(pt ggraph.Point) (uint8, uint8) {
		return percent(safeDiv(pt.X-bb.X1, bb.Width())), percent(safeDiv(pt.Y-bb.Y1, bb.Height()))
	}

	c.canvas.Def()
	if g.Kind == GradientRadial {
		cx, cy := rel(p1)
		fx, fy := rel(p0)
		r := percent(safeDiv(g.R1*m.ScaleFactor(), math.Max(bb.Width(), bb.Height())))
		c.canvas.RadialGradient(id, cx, cy, r, fx, fy, stops)
	} else {
		x1, y1 := rel(p0)
		x2, y2 := rel(p1)
		c.canvas.LinearGradient(id, x1, y1, x2, y2, stops)
	}
	c.canvas.DefEnd()
	return "url(#" + id + ")"
}

// FillText implements TextContext.
func (c *SVGContext) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	p := c.tf(x, y)
	style := fmt.Sprintf("font-size:%gpx;font-family:%s;fill:%s;fill-opacity:%s",
		c.st.font.FontSize*c.st.transform.ScaleFactor(), c.st.font.FontFamily,
		HexColor(c.st.fill.Color), opacity(c.st.fill.Color, c.st.alpha))
	c.canvas.Text(int(math.Round(p.X)), int(math.Round(p.Y)), text, style)
}

// MeasureText implements TextContext with the estimation fallback.
func (c *SVGContext) MeasureText(text string) textmeasure.Metrics {
	size := textmeasure.Estimate(text, c.st.font.FontSize)
	return textmeasure.Metrics{Width: size.Width, FontAscent: size.Height}
}

// Bytes finishes the document and returns it. Drawing after Bytes has
// no effect on the returned document.
func (c *SVGContext) Bytes() []byte {
	if !c.ended {
		c.canvas.End()
		c.ended = true
	}
	return c.buf.Bytes()
}

// WriteTo finishes the document and writes it to w.
func (c *SVGContext) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

func opacity(col color.NRGBA, alpha float64) string {
	return strconv.FormatFloat(roundTo(float64(col.A)/255*alpha, 3), 'f', -1, 64)
}

// paintOpacity is the element opacity. Gradient stops carry their own.
func paintOpacity(p Paint, alpha float64) string {
	if p.Gradient != nil {
		return strconv.FormatFloat(roundTo(alpha, 3), 'f', -1, 64)
	}
	return opacity(p.Color, alpha)
}

func percent(f float64) uint8 {
	return uint8(math.Max(0, math.Min(100, math.Round(f*100))))
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

var _ TextContext = (*SVGContext)(nil)
