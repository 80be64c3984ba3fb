// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface is the host 2D drawing context used by renderers and
// pickers.
//
// Context is a stateful, canvas-style API: path construction, fill and
// stroke with a resolved Paint, a save/restore state stack, an affine
// transform, and exact point-in-path and point-in-stroke tests. Paths are
// stored in device space: every point is transformed when it is added,
// so hit tests take device coordinates regardless of the current
// transform.
//
// Optional capabilities are discovered with type assertions:
//
//   - ShadowContext: shadow styling applied to subsequent paints
//   - TextContext: font selection, text drawing and text metrics
//
// # Contexts
//
//   - PickContext: geometry-only scratch context for hit testing
//   - ImageContext: raster output to *image.RGBA through draw2d
//   - SVGContext: vector output through svgo
//   - Recorder: records every call, used to verify draw procedures
//
// # Registry
//
// Backends register a factory under a name and priority:
//
//	surface.Register("image", 10, factory, nil)
//	ctx, err := surface.NewContextByName("svg", surface.Options{Width: 800, Height: 600})
package surface
