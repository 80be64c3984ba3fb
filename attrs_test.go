// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import "testing"

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 1.5, 1.5, true},
		{"float32", float32(2.5), 2.5, true},
		{"int", 3, 3, true},
		{"int64", int64(-4), -4, true},
		{"uint8", uint8(7), 7, true},
		{"string", "5", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ToFloat(%v) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAttrs_Accessors(t *testing.T) {
	a := Attrs{"r": 10, "fill": "red", "visible": false}

	if v, ok := a.Float("r"); !ok || v != 10 {
		t.Errorf("Float(r) = %v, %v", v, ok)
	}
	if _, ok := a.Float("missing"); ok {
		t.Error("Float(missing) ok = true")
	}
	if s, ok := a.String("fill"); !ok || s != "red" {
		t.Errorf("String(fill) = %q, %v", s, ok)
	}
	if b, ok := a.Bool("visible"); !ok || b {
		t.Errorf("Bool(visible) = %v, %v", b, ok)
	}

	c := a.Clone()
	c["fill"] = "blue"
	if a["fill"] != "red" {
		t.Error("Clone shares storage with source")
	}
	if got := Attrs(nil).Clone(); got == nil {
		t.Error("nil Clone should return an empty bag")
	}
}
