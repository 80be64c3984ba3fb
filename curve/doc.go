// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package curve turns an ordered point sequence into path segments.
//
// Generate interpolates the points with one of the supported curve kinds
// and returns a SegContext: an immutable list of move/line/cubic commands
// that can be replayed into any PathBuilder. The same input always yields
// the same output, so results are safe to share and to cache with a
// Generator.
//
// Supported kinds:
//   - Linear and LinearClosed: straight segments through every point
//   - Basis: uniform cubic B-spline smoothing
//   - MonotoneX and MonotoneY: monotone cubic interpolation along one axis
//   - Step, StepBefore and StepAfter: axis-aligned steps
//
// Fewer than two points produce no segments: Generate returns nil.
package curve
