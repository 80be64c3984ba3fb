// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/textmeasure"
)

// Call is one recorded Context method invocation.
type Call struct {
	Name string
	Args []float64
}

// Recorder is a Context that records every call while keeping real
// state and geometry, so hit tests work as on a PickContext. It also
// implements ShadowContext and TextContext.
type Recorder struct {
	base
	calls []Call
}

// NewRecorder creates a recording context.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{base: newBase(width, height)}
}

func (r *Recorder) record(name string, args ...float64) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Count returns how many times the named method was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the recorded method names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Reset forgets recorded calls. State is kept.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

func (r *Recorder) Save() {
	r.record("Save")
	r.base.Save()
}

func (r *Recorder) Restore() {
	r.record("Restore")
	r.base.Restore()
}

func (r *Recorder) SetTransform(m ggraph.Matrix) {
	r.record("SetTransform", m.A, m.B, m.C, m.D, m.E, m.F)
	r.base.SetTransform(m)
}

func (r *Recorder) ResetTransform() {
	r.record("ResetTransform")
	r.base.ResetTransform()
}

func (r *Recorder) BeginPath() {
	r.record("BeginPath")
	r.base.BeginPath()
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("MoveTo", x, y)
	r.base.MoveTo(x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.record("LineTo", x, y)
	r.base.LineTo(x, y)
}

func (r *Recorder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.record("QuadraticCurveTo", cpx, cpy, x, y)
	r.base.QuadraticCurveTo(cpx, cpy, x, y)
}

func (r *Recorder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.record("BezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
	r.base.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

func (r *Recorder) Arc(x, y, rad, startAngle, endAngle float64, counterclockwise bool) {
	ccw := 0.0
	if counterclockwise {
		ccw = 1
	}
	r.record("Arc", x, y, rad, startAngle, endAngle, ccw)
	r.base.Arc(x, y, rad, startAngle, endAngle, counterclockwise)
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.record("Rect", x, y, w, h)
	r.base.Rect(x, y, w, h)
}

func (r *Recorder) ClosePath() {
	r.record("ClosePath")
	r.base.ClosePath()
}

func (r *Recorder) SetFillStyle(p Paint) {
	r.record("SetFillStyle")
	r.base.SetFillStyle(p)
}

func (r *Recorder) SetStrokeStyle(p Paint) {
	r.record("SetStrokeStyle")
	r.base.SetStrokeStyle(p)
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record("SetLineWidth", w)
	r.base.SetLineWidth(w)
}

func (r *Recorder) SetGlobalAlpha(a float64) {
	r.record("SetGlobalAlpha", a)
	r.base.SetGlobalAlpha(a)
}

func (r *Recorder) Fill()   { r.record("Fill") }
func (r *Recorder) Stroke() { r.record("Stroke") }

// FillStyle returns the current fill paint.
func (r *Recorder) FillStyle() Paint { return r.st.fill }

// StrokeStyle returns the current stroke paint.
func (r *Recorder) StrokeStyle() Paint { return r.st.stroke }

// GlobalAlpha returns the current global alpha.
func (r *Recorder) GlobalAlpha() float64 { return r.st.alpha }

// CurrentShadow returns the current shadow.
func (r *Recorder) CurrentShadow() Shadow { return r.st.shadow }

func (r *Recorder) IsPointInPath(x, y float64) bool {
	r.record("IsPointInPath", x, y)
	return r.base.IsPointInPath(x, y)
}

func (r *Recorder) IsPointInStroke(x, y float64) bool {
	r.record("IsPointInStroke", x, y)
	return r.base.IsPointInStroke(x, y)
}

// SetShadow implements ShadowContext.
func (r *Recorder) SetShadow(s Shadow) {
	r.record("SetShadow", s.Blur, s.OffsetX, s.OffsetY)
	r.setShadow(s)
}

// SetFont implements TextContext.
func (r *Recorder) SetFont(style textmeasure.Style) {
	r.record("SetFont", style.FontSize)
	r.base.SetFont(style)
}

// FillText implements TextContext.
func (r *Recorder) FillText(text string, x, y float64) {
	r.record("FillText", x, y)
}

// MeasureText implements TextContext with the estimation fallback.
func (r *Recorder) MeasureText(text string) textmeasure.Metrics {
	r.record("MeasureText")
	size := textmeasure.Estimate(text, r.st.font.FontSize)
	return textmeasure.Metrics{Width: size.Width, FontAscent: size.Height}
}

var (
	_ ShadowContext = (*Recorder)(nil)
	_ TextContext   = (*Recorder)(nil)
)
