// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/textmeasure"
)

// state is the part of a context saved by Save.
type state struct {
	transform ggraph.Matrix
	fill      Paint
	stroke    Paint
	lineWidth float64
	lineCap   LineCap
	lineJoin  LineJoin
	alpha     float64
	shadow    Shadow
	font      textmeasure.Style
}

func defaultState() state {
	black := color.NRGBA{A: 255}
	return state{
		transform: ggraph.Identity(),
		fill:      SolidPaint(black),
		stroke:    SolidPaint(black),
		lineWidth: 1,
		alpha:     1,
		font:      textmeasure.Style{FontSize: 10, FontFamily: "sans-serif"},
	}
}

// base implements the state, transform and path parts of Context.
// Concrete contexts embed it and add painting.
type base struct {
	width, height int
	st            state
	stack         []state
	path          Path
}

func newBase(width, height int) base {
	return base{width: width, height: height, st: defaultState()}
}

func (b *base) Width() int  { return b.width }
func (b *base) Height() int { return b.height }

func (b *base) Save() {
	b.stack = append(b.stack, b.st)
}

func (b *base) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.st = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *base) SetTransform(m ggraph.Matrix) { b.st.transform = m }
func (b *base) Transform() ggraph.Matrix     { return b.st.transform }
func (b *base) ResetTransform()              { b.st.transform = ggraph.Identity() }

func (b *base) tf(x, y float64) ggraph.Point {
	return b.st.transform.TransformPoint(ggraph.Pt(x, y))
}

func (b *base) BeginPath() { b.path.Clear() }

func (b *base) MoveTo(x, y float64) { b.path.MoveTo(b.tf(x, y)) }

func (b *base) LineTo(x, y float64) { b.path.LineTo(b.tf(x, y)) }

func (b *base) QuadraticCurveTo(cpx, cpy, x, y float64) {
	b.path.QuadTo(b.tf(cpx, cpy), b.tf(x, y))
}

func (b *base) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	b.path.CubicTo(b.tf(cp1x, cp1y), b.tf(cp2x, cp2y), b.tf(x, y))
}

func (b *base) Arc(x, y, r, startAngle, endAngle float64, counterclockwise bool) {
	if r < 0 {
		r = 0
	}
	first := b.tf(x+r*math.Cos(startAngle), y+r*math.Sin(startAngle))
	if b.path.IsEmpty() || b.path.verbs[len(b.path.verbs)-1] == VerbClose {
		b.path.MoveTo(first)
	} else {
		b.path.LineTo(first)
	}
	sweep := arcSweep(startAngle, endAngle, counterclockwise)
	arcSegments(x, y, r, startAngle, sweep, b.tf, func(c1, c2, end ggraph.Point) {
		b.path.CubicTo(c1, c2, end)
	})
}

func (b *base) Rect(x, y, w, h float64) {
	b.path.MoveTo(b.tf(x, y))
	b.path.LineTo(b.tf(x+w, y))
	b.path.LineTo(b.tf(x+w, y+h))
	b.path.LineTo(b.tf(x, y+h))
	b.path.Close()
}

func (b *base) ClosePath() { b.path.Close() }

func (b *base) Path() *Path { return &b.path }

func (b *base) SetFillStyle(p Paint)     { b.st.fill = p }
func (b *base) SetStrokeStyle(p Paint)   { b.st.stroke = p }
func (b *base) SetLineWidth(w float64)   { b.st.lineWidth = w }
func (b *base) LineWidth() float64       { return b.st.lineWidth }
func (b *base) SetLineCap(c LineCap)     { b.st.lineCap = c }
func (b *base) SetLineJoin(j LineJoin)   { b.st.lineJoin = j }
func (b *base) SetGlobalAlpha(a float64) { b.st.alpha = a }

// setShadow backs ShadowContext for contexts that paint shadows.
func (b *base) setShadow(s Shadow) { b.st.shadow = s }

func (b *base) SetFont(style textmeasure.Style) {
	b.st.font = b.st.font.Merge(style)
}

// deviceLineWidth is the line width scaled by the current transform.
func (b *base) deviceLineWidth() float64 {
	return b.st.lineWidth * b.st.transform.ScaleFactor()
}

func (b *base) IsPointInPath(x, y float64) bool {
	return b.path.Contains(ggraph.Pt(x, y))
}

func (b *base) IsPointInStroke(x, y float64) bool {
	return b.path.StrokeContains(ggraph.Pt(x, y), b.deviceLineWidth())
}
