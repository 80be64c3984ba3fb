// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package textmeasure measures text and clips it to a pixel width budget.
//
// A Measurer uses a live Provider when one is configured (FaceProvider for
// x/image fonts, ShapingProvider for HarfBuzz shaping) and falls back to
// an estimate otherwise: characters below U+0080 count as 0.8 em, all
// others as 1 em, truncated toward zero.
//
// Clip finds the longest prefix that fits by bisection, using O(log n)
// width measurements. ClipWithSuffix reserves room for a suffix such as
// an ellipsis. The vertical variants work on runs produced by
// BuildVerticalList, where wide characters occupy a fixed em box and
// narrow runs are measured.
//
// All clipping is total: empty text or a non-positive budget yields an
// empty result, never an error.
package textmeasure
