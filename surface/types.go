// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// ParseLineCap converts a canvas cap name. Unknown names map to butt.
func ParseLineCap(s string) LineCap {
	switch s {
	case "round":
		return LineCapRound
	case "square":
		return LineCapSquare
	}
	return LineCapButt
}

func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "butt"
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// ParseLineJoin converts a canvas join name. Unknown names map to miter.
func ParseLineJoin(s string) LineJoin {
	switch s {
	case "round":
		return LineJoinRound
	case "bevel":
		return LineJoinBevel
	}
	return LineJoinMiter
}

func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "miter"
}

// GradientKind selects linear or radial interpolation.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// GradientStop is a color at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a color ramp in user space. Linear gradients run from
// (X0,Y0) to (X1,Y1); radial gradients interpolate from the circle
// (X0,Y0,R0) to (X1,Y1,R1).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []GradientStop
}

// ColorAt returns the ramp color at parameter t, clamped to [0, 1].
func (g *Gradient) ColorAt(t float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

// Param returns the ramp parameter of the user-space point (x, y).
func (g *Gradient) Param(x, y float64) float64 {
	if g.Kind == GradientRadial {
		dr := g.R1 - g.R0
		if dr == 0 {
			return 0
		}
		// Concentric approximation: distance from the end circle center.
		dx, dy := x-g.X1, y-g.Y1
		d := math.Hypot(dx, dy)
		return (d - g.R0) / dr
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Paint is a fill or stroke source: a solid color, or a gradient when
// Gradient is non-nil.
type Paint struct {
	Color    color.NRGBA
	Gradient *Gradient
}

// SolidPaint returns a Paint with a single color.
func SolidPaint(c color.NRGBA) Paint {
	return Paint{Color: c}
}

// IsZero reports whether the paint draws nothing.
func (p Paint) IsZero() bool {
	return p.Gradient == nil && p.Color.A == 0
}

// Shadow describes a drop shadow applied to subsequent fills and strokes.
type Shadow struct {
	Color   color.NRGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// IsZero reports whether the shadow is invisible.
func (s Shadow) IsZero() bool {
	return s.Color.A == 0 || (s.Blur == 0 && s.OffsetX == 0 && s.OffsetY == 0)
}

// Options configures context creation through the registry.
type Options struct {
	// Width is the context width in pixels.
	Width int

	// Height is the context height in pixels.
	Height int

	// Background, when non-zero, is painted over the whole context on
	// creation. Only raster and SVG contexts honour it.
	Background color.NRGBA
}

// DefaultOptions returns Options with the given size.
func DefaultOptions(width, height int) Options {
	return Options{Width: width, Height: height}
}
