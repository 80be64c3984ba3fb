// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggraph is a retained-mode 2D rendering core for charts and
// diagrams.
//
// # Overview
//
// A drawing is a list of graphic nodes (circle, arc, rect, line, text and
// glyph) carrying loosely typed attributes. Nodes resolve their attributes
// against a theme, compute their own geometry and bounds, and are drawn by
// per-type renderers onto a surface. The same renderers drive hit testing,
// so a point is inside a node exactly where the node paints.
//
// # Quick Start
//
//	s := scene.NewBuilder().
//	    Size(200, 100).
//	    Circle(ggraph.Attrs{"x": 50, "y": 50, "r": 20, "fill": "#e8684a"}).
//	    Build()
//
//	img := surface.NewImageContext(s.Width, s.Height)
//	if err := render.NewService().Render(ctx, img, s.Nodes...); err != nil {
//	    log.Println(err)
//	}
//	img.SavePNG("out.png")
//
//	pk := picker.NewService()
//	pk.Add(s.Nodes...)
//	node, ok := pk.Pick(ggraph.Pt(50, 50))
//
// # Packages
//
//   - graphic: node types, attribute resolution, geometry and bounds
//   - render: per-type renderers, contributions and the draw service
//   - picker: hit testing and the spatial pick index
//   - surface: drawing contexts (raster, SVG, recording and picking)
//   - textmeasure: text measurement, clipping and vertical layout
//   - curve: line interpolation curves
//   - theme: default attribute values
//   - cache: bounded caches shared by nodes and measurers
//   - scene: scene construction and YAML/TOML loading
//
// # Logging
//
// ggraph is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] handler.
//
// # Coordinate System
//
// The origin is the top-left corner with Y increasing downward. Angles are
// in radians and grow clockwise on screen.
package ggraph
