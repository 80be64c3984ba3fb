// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import "math"

// SolveQuadratic finds real roots of ax^2 + bx + c = 0 in ascending order.
// A (nearly) zero a degrades to the linear equation bx + c = 0.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	switch {
	case !isFinite(arg):
		return sortedPair(-sc1, sc0/-sc1)
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoids cancellation between -b and sqrt(arg).
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

// SolveQuadraticInUnitInterval returns the roots of ax^2 + bx + c = 0
// that lie in [0, 1], clamping values within rounding distance of the ends.
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range SolveQuadratic(a, b, c) {
		if r < -eps || r > 1+eps {
			continue
		}
		result = append(result, math.Max(0, math.Min(1, r)))
	}
	return result
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0 && b == 0 {
		return []float64{0}
	}
	return nil
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
