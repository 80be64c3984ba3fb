// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package picker hit-tests graphic nodes.
//
// A pick first rejects points outside the node's bounding box. Nodes with
// pickMode "imprecise" are hit anywhere in the box. Other nodes are
// tested exactly: the node's renderer rebuilds its path on a scratch
// surface, and the fill and stroke steps are replaced by point-in-path
// and point-in-stroke tests. Picking and drawing share one path builder,
// so what is hit is what is drawn.
//
// Service keeps a scene in an R-tree and returns the topmost hit:
//
//	ps := picker.NewService()
//	ps.Add(background, marker)
//	if n, ok := ps.Pick(ggraph.Pt(x, y)); ok {
//		n.UseStates("hover")
//	}
package picker
