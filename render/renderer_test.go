// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/theme"
)

func drawOne(t *testing.T, svc *Service, n graphic.Node) *surface.Recorder {
	t.Helper()
	rec := surface.NewRecorder(100, 100)
	if err := svc.Render(context.Background(), rec, n); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return rec
}

func TestDrawEarlyExit(t *testing.T) {
	tests := []struct {
		name string
		node graphic.Node
	}{
		{"invisible", graphic.NewCircle(ggraph.Attrs{"radius": 10, "fill": "#ff0000", "visible": false})},
		{"invalid", graphic.NewCircle(ggraph.Attrs{"radius": -1, "fill": "#ff0000"})},
		{"no fill no stroke", graphic.NewCircle(ggraph.Attrs{"radius": 10})},
		{"transparent", graphic.NewCircle(ggraph.Attrs{"radius": 10, "fill": "#ff0000", "opacity": 0})},
		{"fill none", graphic.NewRect(ggraph.Attrs{"width": 10, "height": 10, "fill": "none"})},
		{"empty glyph", graphic.NewGlyph(ggraph.Attrs{"fill": "#ff0000"})},
		{"empty text", graphic.NewText(ggraph.Attrs{"fill": "#ff0000"})},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := drawOne(t, svc, tt.node)
			for _, name := range []string{"BeginPath", "Arc", "Rect", "Fill", "Stroke", "FillText"} {
				if got := rec.Count(name); got != 0 {
					t.Errorf("Count(%q) = %d, want 0", name, got)
				}
			}
		})
	}
}

func TestDrawFillThenStroke(t *testing.T) {
	c := graphic.NewCircle(ggraph.Attrs{
		"x": 50, "y": 40, "radius": 10,
		"fill": "#ff0000", "stroke": "#0000ff", "lineWidth": 2,
	})
	rec := drawOne(t, NewService(), c)

	want := []string{
		"Save", "SetTransform", "BeginPath", "Arc", "ClosePath",
		"SetFillStyle", "SetGlobalAlpha", "Fill",
		"SetLineWidth", "SetStrokeStyle", "SetGlobalAlpha", "Stroke",
		"Restore",
	}
	if got := rec.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	arc := rec.Calls()[3]
	if want := []float64{50, 40, 10, 0, 2 * math.Pi, 0}; !slices.Equal(arc.Args, want) {
		t.Errorf("Arc args = %v, want %v", arc.Args, want)
	}
	if got := rec.Calls()[8].Args[0]; got != 2 {
		t.Errorf("SetLineWidth = %v, want 2", got)
	}
}

func TestDrawRotatedUsesFullTransform(t *testing.T) {
	c := graphic.NewCircle(ggraph.Attrs{
		"x": 50, "y": 50, "radius": 10, "angle": math.Pi / 2, "fill": "#ff0000",
	})
	rec := drawOne(t, NewService(), c)

	var setT, arc surface.Call
	for _, call := range rec.Calls() {
		switch call.Name {
		case "SetTransform":
			setT = call
		case "Arc":
			arc = call
		}
	}
	if m := ggraph.Compose(50, 50, 1, 1, math.Pi/2); setT.Args[2] != m.C || setT.Args[5] != m.F {
		t.Errorf("SetTransform translation = (%v,%v), want (%v,%v)", setT.Args[2], setT.Args[5], m.C, m.F)
	}
	if arc.Args[0] != 0 || arc.Args[1] != 0 {
		t.Errorf("Arc origin = (%v,%v), want (0,0)", arc.Args[0], arc.Args[1])
	}
}

func TestDrawShapeInterceptors(t *testing.T) {
	r := NewCircleRenderer(nil)
	rec := surface.NewRecorder(100, 100)

	var fills, strokes int
	fill := func(surface.Context, graphic.Resolver) bool { fills++; return true }
	stroke := func(surface.Context, graphic.Resolver) bool { strokes++; return false }

	t.Run("fill hit stops the draw", func(t *testing.T) {
		fills, strokes = 0, 0
		c := graphic.NewCircle(ggraph.Attrs{"radius": 10, "fill": "#ff0000", "stroke": "#0000ff"})
		r.DrawShape(c, rec, 0, 0, nil, Params{}, fill, stroke)
		if fills != 1 || strokes != 0 {
			t.Errorf("fills, strokes = %d, %d, want 1, 0", fills, strokes)
		}
		if rec.Count("Fill") != 0 || rec.Count("Stroke") != 0 {
			t.Error("interceptors must replace painting")
		}
	})

	t.Run("stroke only skips fill interceptor", func(t *testing.T) {
		fills, strokes = 0, 0
		c := graphic.NewCircle(ggraph.Attrs{"radius": 10, "stroke": "#0000ff"})
		r.DrawShape(c, rec, 0, 0, nil, Params{}, fill, stroke)
		if fills != 0 || strokes != 1 {
			t.Errorf("fills, strokes = %d, %d, want 0, 1", fills, strokes)
		}
	})

	t.Run("invisible fill still intercepted", func(t *testing.T) {
		fills, strokes = 0, 0
		c := graphic.NewCircle(ggraph.Attrs{"radius": 10, "fill": "#ff0000", "fillOpacity": 0})
		r.DrawShape(c, rec, 0, 0, nil, Params{}, fill, stroke)
		if fills != 1 {
			t.Errorf("fills = %d, want 1", fills)
		}
	})
}

func TestDrawRectAndCorners(t *testing.T) {
	svc := NewService()

	rec := drawOne(t, svc, graphic.NewRect(ggraph.Attrs{
		"x": 10, "y": 20, "dx": 2, "width": 30, "height": 15, "fill": "#ff0000",
	}))
	var rect surface.Call
	for _, call := range rec.Calls() {
		if call.Name == "Rect" {
			rect = call
		}
	}
	if want := []float64{12, 20, 30, 15}; !slices.Equal(rect.Args, want) {
		t.Errorf("Rect args = %v, want %v", rect.Args, want)
	}

	rec = drawOne(t, svc, graphic.NewRect(ggraph.Attrs{
		"width": 30, "height": 10, "cornerRadius": 20, "fill": "#ff0000",
	}))
	if got := rec.Count("Arc"); got != 4 {
		t.Errorf("rounded rect Arc count = %d, want 4", got)
	}
	for _, call := range rec.Calls() {
		if call.Name == "Arc" && call.Args[2] != 5 {
			t.Errorf("corner radius = %v, want 5 (clamped to half height)", call.Args[2])
		}
	}
}

func TestDrawArcSector(t *testing.T) {
	svc := NewService()

	ring := drawOne(t, svc, graphic.NewArc(ggraph.Attrs{
		"innerRadius": 5, "outerRadius": 10, "endAngle": math.Pi, "fill": "#ff0000",
	}))
	if got := ring.Count("Arc"); got != 2 {
		t.Errorf("ring Arc count = %d, want 2", got)
	}

	pie := drawOne(t, svc, graphic.NewArc(ggraph.Attrs{
		"outerRadius": 10, "endAngle": math.Pi, "fill": "#ff0000",
	}))
	if pie.Count("Arc") != 1 || pie.Count("LineTo") != 1 {
		t.Errorf("pie Arc, LineTo = %d, %d, want 1, 1", pie.Count("Arc"), pie.Count("LineTo"))
	}
}

func TestDrawLineReplaysSegments(t *testing.T) {
	l := graphic.NewLine(ggraph.Attrs{
		"x": 10, "y": 10,
		"points": []ggraph.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
	})
	rec := drawOne(t, NewService(), l)

	if rec.Count("MoveTo") != 1 || rec.Count("LineTo") != 2 || rec.Count("Stroke") != 1 {
		t.Errorf("Names() = %v, want one MoveTo, two LineTo, one Stroke", rec.Names())
	}
	for _, call := range rec.Calls() {
		if call.Name == "MoveTo" && (call.Args[0] != 10 || call.Args[1] != 10) {
			t.Errorf("MoveTo = %v, want (10,10)", call.Args)
		}
	}
}

func TestDrawText(t *testing.T) {
	txt := graphic.NewText(ggraph.Attrs{"x": 10, "y": 20, "text": "hi", "fontSize": 10})
	rec := drawOne(t, NewService(), txt)

	var ft surface.Call
	for _, call := range rec.Calls() {
		if call.Name == "FillText" {
			ft = call
		}
	}
	if ft.Name == "" {
		t.Fatalf("FillText not called; Names() = %v", rec.Names())
	}
	if math.Abs(ft.Args[0]-10) > 1e-9 || math.Abs(ft.Args[1]-20) > 1e-9 {
		t.Errorf("FillText at (%v,%v), want (10,20)", ft.Args[0], ft.Args[1])
	}
	if rec.Count("Fill") != 0 {
		t.Error("text fill must draw glyphs, not the box")
	}
}

func TestDrawShadow(t *testing.T) {
	c := graphic.NewCircle(ggraph.Attrs{
		"radius": 10, "fill": "#ff0000",
		"shadowBlur": 4, "shadowOffsetX": 2, "shadowColor": "#000000",
	})
	rec := drawOne(t, NewService(), c)

	if got := rec.Count("SetShadow"); got != 2 {
		t.Fatalf("SetShadow count = %d, want 2 (set and clear)", got)
	}
	if got := rec.CurrentShadow(); !got.IsZero() {
		t.Errorf("shadow after draw = %+v, want zero", got)
	}
}

func TestGlyphDispatchesToChildren(t *testing.T) {
	g := graphic.NewGlyph(ggraph.Attrs{"fill": "#ff0000"})
	g.SetSubGraphic(
		graphic.NewRect(ggraph.Attrs{"width": 10, "height": 10}),
		graphic.NewRect(ggraph.Attrs{"dx": 20, "width": 10, "height": 10}),
	)
	g.Translate(5, 5)

	rec := drawOne(t, NewService(), g)

	var rects [][]float64
	for _, call := range rec.Calls() {
		if call.Name == "Rect" {
			rects = append(rects, call.Args)
		}
	}
	want := [][]float64{{5, 5, 10, 10}, {25, 5, 10, 10}}
	if len(rects) != len(want) {
		t.Fatalf("Rect calls = %v, want %v", rects, want)
	}
	for i := range want {
		if !slices.Equal(rects[i], want[i]) {
			t.Errorf("Rect[%d] = %v, want %v", i, rects[i], want[i])
		}
	}
	if got := rec.Count("Fill"); got != 2 {
		t.Errorf("Fill count = %d, want 2", got)
	}
}

func TestGlyphThemeOverridesDrawTheme(t *testing.T) {
	drawTheme := theme.New()
	drawTheme.Types[theme.TypeRect] = ggraph.Attrs{"fill": "#0000ff"}
	glyphTheme := theme.New()
	glyphTheme.Types[theme.TypeRect] = ggraph.Attrs{"fill": "#00ff00"}
	svc := NewService(WithTheme(drawTheme))

	tests := []struct {
		name string
		own  *theme.Theme
		want color.NRGBA
	}{
		{"glyph theme", glyphTheme, color.NRGBA{G: 0xff, A: 0xff}},
		{"draw theme only", nil, color.NRGBA{B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphic.NewGlyph(nil)
			g.SetSubGraphic(graphic.NewRect(ggraph.Attrs{"width": 10, "height": 10}))
			g.SetTheme(tt.own)

			rec := surface.NewRecorder(50, 50)
			r, _ := svc.Renderer(graphic.TypeGlyph)
			r.DrawShape(g, rec, 0, 0, &DrawContext{Surface: rec, Service: svc}, svc.Params(), nil, nil)

			if got := rec.Count("Fill"); got != 1 {
				t.Fatalf("Fill count = %d, want 1", got)
			}
			if got := rec.FillStyle().Color; got != tt.want {
				t.Errorf("fill = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlyphDrawShapeInterceptors(t *testing.T) {
	svc := NewService()
	g := graphic.NewGlyph(ggraph.Attrs{"fill": "#ff0000"})
	g.SetSubGraphic(
		graphic.NewCircle(ggraph.Attrs{"radius": 5}),
		graphic.NewCircle(ggraph.Attrs{"dx": 20, "radius": 5}),
	)

	r, _ := svc.Renderer(graphic.TypeGlyph)
	rec := surface.NewRecorder(100, 100)
	var origins []float64
	fill := func(s surface.Context, _ graphic.Resolver) bool {
		origins = append(origins, s.Path().Bounds().X1+5)
		return false
	}
	r.DrawShape(g, rec, 100, 0, &DrawContext{Surface: rec, Service: svc}, Params{}, fill, nil)

	if want := []float64{100, 120}; len(origins) != 2 ||
		math.Abs(origins[0]-want[0]) > 1e-6 || math.Abs(origins[1]-want[1]) > 1e-6 {
		t.Errorf("child origins = %v, want %v", origins, want)
	}
}
