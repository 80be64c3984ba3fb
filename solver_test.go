// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifyRoots(t *testing.T, name string, roots, want []float64) {
	t.Helper()
	if len(roots) != len(want) {
		t.Errorf("%s: roots = %v, want %v", name, roots, want)
		return
	}
	for i := range roots {
		if !almostEqual(roots[i], want[i], 1e-10) {
			t.Errorf("%s: root[%d] = %v, want %v", name, i, roots[i], want[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"no real roots", 1, 0, 5, nil},
		{"linear", 0, 1, 5, []float64{-5}},
		{"double root", 1, 2, 1, []float64{-1}},
		{"general", 1, -5, 6, []float64{2, 3}},
		{"scaled", 2, -10, 12, []float64{2, 3}},
		{"all zero", 0, 0, 0, []float64{0}},
		{"constant", 0, 0, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			verifyRoots(t, tt.name, roots, tt.want)
			for _, r := range roots {
				if v := tt.a*r*r + tt.b*r + tt.c; math.Abs(v) > 1e-8 {
					t.Errorf("f(%v) = %v, want 0", r, v)
				}
			}
		})
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"roots outside", 1, 0, -100, nil},
		{"roots at boundaries", 1, -1, 0, []float64{0, 1}},
		{"one root inside", 1, -0.5, 0, []float64{0, 0.5}},
		{"both roots inside", 1, -0.6, 0.08, []float64{0.2, 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifyRoots(t, tt.name, SolveQuadraticInUnitInterval(tt.a, tt.b, tt.c), tt.want)
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{1, true},
		{-1, true},
		{0, true},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if got := isFinite(tt.x); got != tt.want {
			t.Errorf("isFinite(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
