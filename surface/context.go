// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/textmeasure"
)

// Context is a stateful 2D drawing context.
//
// Path coordinates are user space and are transformed into device space
// as they are added. IsPointInPath and IsPointInStroke take device
// coordinates.
type Context interface {
	// Width returns the context width in pixels.
	Width() int

	// Height returns the context height in pixels.
	Height() int

	// Save pushes the drawing state (transform, paints, line style,
	// alpha, shadow and font). The current path is not part of the state.
	Save()

	// Restore pops the drawing state. Restore without Save is a no-op.
	Restore()

	// SetTransform replaces the current transform.
	SetTransform(m ggraph.Matrix)

	// Transform returns the current transform.
	Transform() ggraph.Matrix

	// ResetTransform sets the identity transform.
	ResetTransform()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)

	// Arc adds a circular arc. If a subpath is open, a line connects its
	// current point to the arc start.
	Arc(x, y, r, startAngle, endAngle float64, counterclockwise bool)
	Rect(x, y, w, h float64)
	ClosePath()

	// Path returns the current path in device space. It must not be
	// modified.
	Path() *Path

	SetFillStyle(p Paint)
	SetStrokeStyle(p Paint)
	SetLineWidth(w float64)
	LineWidth() float64
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)

	// SetGlobalAlpha sets the opacity multiplied into every paint.
	SetGlobalAlpha(a float64)

	// Fill paints the interior of the current path (non-zero rule).
	Fill()

	// Stroke paints the outline of the current path.
	Stroke()

	// IsPointInPath reports whether the device point lies inside the
	// current path.
	IsPointInPath(x, y float64) bool

	// IsPointInStroke reports whether the device point lies on the
	// stroke of the current path with the current line width.
	IsPointInStroke(x, y float64) bool
}

// ShadowContext is implemented by contexts that can paint shadows.
type ShadowContext interface {
	Context

	// SetShadow sets the shadow used by subsequent fills and strokes.
	// The zero Shadow disables shadows.
	SetShadow(s Shadow)
}

// TextContext is implemented by contexts that can draw text.
type TextContext interface {
	Context

	SetFont(style textmeasure.Style)

	// FillText draws text with its alphabetic baseline starting at (x, y)
	// in user space, using the fill paint.
	FillText(text string, x, y float64)

	// MeasureText measures text with the current font.
	MeasureText(text string) textmeasure.Metrics
}
