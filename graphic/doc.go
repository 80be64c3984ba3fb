// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package graphic implements the retained-mode node model.
//
// A node is a typed drawable with a sparse attribute bag, an affine
// transform derived from its position attributes, and lazily computed
// bounds. Mutations set dirty tags; the next bounds read recomputes once
// and clears them.
//
// Glyph is a composite node. Its children read attributes through to the
// glyph's bag, so moving or restyling the glyph moves and restyles every
// child without copying anything into the children:
//
//	g := graphic.NewGlyph(ggraph.Attrs{"fill": "red"})
//	g.SetSubGraphic(
//		graphic.NewRect(ggraph.Attrs{"width": 10, "height": 10}),
//		graphic.NewRect(ggraph.Attrs{"dx": 20, "width": 10, "height": 10}),
//	)
//	g.Translate(5, 5)
//	b := g.SubGraphic()[1].AABBBounds() // (25,5)-(35,15)
//
// Nodes are not safe for concurrent mutation. A tree is owned by one
// goroutine at a time.
package graphic
