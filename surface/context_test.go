// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/ggraph"
)

func TestPickContext_CircleHitTests(t *testing.T) {
	c := NewPickContext(100, 100)
	c.BeginPath()
	c.Arc(0, 0, 10, 0, 2*math.Pi, false)
	c.ClosePath()
	c.SetLineWidth(2)

	tests := []struct {
		name           string
		x, y           float64
		inPath, inLine bool
	}{
		{"center", 0, 0, true, false},
		{"inside near outline", 9.5, 0, true, true},
		{"just outside", 10.8, 0, false, true},
		{"far outside", 20, 0, false, false},
		{"diagonal near outline", 9.5 * math.Cos(1), 9.5 * math.Sin(1), true, true},
		{"diagonal outside", 10.6 * math.Cos(2), 10.6 * math.Sin(2), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsPointInPath(tt.x, tt.y); got != tt.inPath {
				t.Errorf("IsPointInPath = %v, want %v", got, tt.inPath)
			}
			if got := c.IsPointInStroke(tt.x, tt.y); got != tt.inLine {
				t.Errorf("IsPointInStroke = %v, want %v", got, tt.inLine)
			}
		})
	}
}

func TestPickContext_Transform(t *testing.T) {
	c := NewPickContext(100, 100)
	c.SetTransform(ggraph.Translate(50, 50).Multiply(ggraph.Scale(2, 2)))
	c.BeginPath()
	c.Rect(0, 0, 10, 10)

	// Points are stored in device space.
	if b := c.Path().Bounds(); b != ggraph.NewBounds(50, 50, 70, 70) {
		t.Errorf("path bounds = %+v, want (50,50)-(70,70)", b)
	}
	if !c.IsPointInPath(60, 60) || c.IsPointInPath(45, 60) {
		t.Error("IsPointInPath ignores the transform")
	}

	// Line width scales with the transform: 1 user unit = 2 device units.
	c.SetLineWidth(1)
	if !c.IsPointInStroke(70.9, 60) {
		t.Error("scaled stroke should reach 1 device pixel out")
	}
}

func TestBase_SaveRestore(t *testing.T) {
	c := NewPickContext(10, 10)
	c.SetLineWidth(4)
	c.SetGlobalAlpha(0.5)
	c.SetTransform(ggraph.Translate(3, 3))
	c.Save()
	c.SetLineWidth(9)
	c.SetTransform(ggraph.Scale(2, 2))
	c.SetFillStyle(SolidPaint(color.NRGBA{R: 255, A: 255}))
	c.Restore()

	if c.LineWidth() != 4 {
		t.Errorf("LineWidth after Restore = %v, want 4", c.LineWidth())
	}
	if c.Transform() != ggraph.Translate(3, 3) {
		t.Errorf("Transform after Restore = %+v", c.Transform())
	}
	if c.st.fill.Color.R != 0 {
		t.Error("fill style not restored")
	}

	c.Restore() // unbalanced restore is ignored
	c.ResetTransform()
	if !c.Transform().IsIdentity() {
		t.Error("ResetTransform did not reset")
	}

	c.Reset()
	if c.LineWidth() != 1 || c.st.alpha != 1 {
		t.Error("Reset did not restore defaults")
	}
}

func TestBase_ArcJoinsOpenSubpath(t *testing.T) {
	c := NewPickContext(10, 10)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.Arc(10, 0, 5, 0, math.Pi, false)

	var verbs []Verb
	c.Path().Walk(func(v Verb, _ []ggraph.Point) { verbs = append(verbs, v) })
	if len(verbs) < 3 || verbs[1] != VerbLineTo {
		t.Errorf("verbs = %v, want MoveTo, LineTo, CubicTo...", verbs)
	}
	if end := c.Path().CurrentPoint(); end.Distance(ggraph.Pt(5, 0)) > 1e-9 {
		t.Errorf("arc end = %v, want (5,0)", end)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Save()
	r.BeginPath()
	r.Rect(0, 0, 5, 5)
	r.SetShadow(Shadow{Color: color.NRGBA{A: 255}, OffsetX: 2})
	r.Fill()
	r.Stroke()
	r.Restore()

	want := []string{"Save", "BeginPath", "Rect", "SetShadow", "Fill", "Stroke", "Restore"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
	if r.Count("Fill") != 1 {
		t.Errorf("Count(Fill) = %d", r.Count("Fill"))
	}
	if !r.IsPointInPath(2, 2) {
		t.Error("recorder should keep geometry for hit tests")
	}
	if !r.CurrentShadow().IsZero() {
		t.Error("shadow should be restored by Restore")
	}

	r.Reset()
	if len(r.Calls()) != 0 {
		t.Error("Reset left calls behind")
	}
}
