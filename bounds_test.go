// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import (
	"math"
	"testing"
)

func TestBoundsEmpty(t *testing.T) {
	e := EmptyBounds()
	if !e.IsEmpty() {
		t.Fatal("EmptyBounds().IsEmpty() = false, want true")
	}
	if e.Width() != 0 || e.Height() != 0 {
		t.Errorf("empty size = %vx%v, want 0x0", e.Width(), e.Height())
	}
	if got := e.Expand(5); !got.IsEmpty() {
		t.Errorf("Expand on empty = %+v, want empty", got)
	}
	if got := e.Add(1, 2); got != NewBounds(1, 2, 1, 2) {
		t.Errorf("Add = %+v, want point box", got)
	}
	b := NewBounds(0, 0, 1, 1)
	if got := e.Union(b); got != b {
		t.Errorf("Union = %+v, want %+v", got, b)
	}
}

func TestBoundsOps(t *testing.T) {
	b := NewBounds(10, 20, 0, 5)
	if b != (Bounds{X1: 0, Y1: 5, X2: 10, Y2: 20}) {
		t.Fatalf("NewBounds not normalized: %+v", b)
	}
	if got := b.Expand(2); got != (Bounds{X1: -2, Y1: 3, X2: 12, Y2: 22}) {
		t.Errorf("Expand = %+v", got)
	}
	if got := b.Translate(1, -1); got != (Bounds{X1: 1, Y1: 4, X2: 11, Y2: 19}) {
		t.Errorf("Translate = %+v", got)
	}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 10), true},
		{Pt(0, 5), true},
		{Pt(10, 20), true},
		{Pt(10.01, 20), false},
		{Pt(-1, 10), false},
	}
	for _, tt := range tests {
		if got := b.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBoundsTransform(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)
	got := b.Transform(Rotate(math.Pi / 4))
	h := 10 * math.Sqrt2
	if !almostEqual(got.X1, -h/2, 1e-9) || !almostEqual(got.X2, h/2, 1e-9) ||
		!almostEqual(got.Y1, 0, 1e-9) || !almostEqual(got.Y2, h, 1e-9) {
		t.Errorf("Transform(rot45) = %+v", got)
	}
}

func TestOBB(t *testing.T) {
	o := OBB{Local: NewBounds(0, -1, 10, 1), Matrix: Compose(5, 5, 1, 1, math.Pi/2)}
	if !almostEqual(o.Angle(), math.Pi/2, 1e-9) {
		t.Errorf("Angle = %v, want pi/2", o.Angle())
	}
	if !o.ContainsPoint(Pt(5, 12)) {
		t.Error("ContainsPoint(5,12) = false, want true")
	}
	if o.ContainsPoint(Pt(12, 5)) {
		t.Error("ContainsPoint(12,5) = true, want false")
	}
	if (OBB{Local: EmptyBounds()}).ContainsPoint(Pt(0, 0)) {
		t.Error("empty OBB contains a point")
	}
}

func TestCubicBoundingBox(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	got := c.BoundingBox()
	// y peaks at t=0.5: 0.75*10 = 7.5
	if !almostEqual(got.Y2, 7.5, 1e-9) || got.X1 != 0 || got.X2 != 10 || got.Y1 != 0 {
		t.Errorf("BoundingBox = %+v, want {0 0 10 7.5}", got)
	}
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	for _, tt := range []float64{0, 0.3, 0.5, 1} {
		if a, b := q.Eval(tt), q.Raise().Eval(tt); a.Distance(b) > 1e-9 {
			t.Errorf("Raise().Eval(%v) = %v, want %v", tt, b, a)
		}
	}
}

func TestCubicFlatten(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	pts := c.Flatten(0.1)
	if len(pts) < 2 {
		t.Fatalf("Flatten produced %d points", len(pts))
	}
	if last := pts[len(pts)-1]; last.Distance(c.P3) > 1e-9 {
		t.Errorf("last point = %v, want %v", last, c.P3)
	}
	line := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(2, 0), P3: Pt(3, 0)}
	if got := len(line.Flatten(0.1)); got != 1 {
		t.Errorf("straight Flatten = %d points, want 1", got)
	}
}
