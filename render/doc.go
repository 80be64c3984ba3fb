// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws graphic nodes onto surface contexts.
//
// Every node type has a Renderer. Simple shapes share one draw
// procedure: resolve attributes against the theme, decide fill and
// stroke, build the path, run the before-phase contributions, apply the
// shadow, fill, stroke, then run the after-phase contributions. Glyph
// renderers build no geometry and dispatch to their children.
//
// # Contributions
//
// A Contribution is a reusable step bound to a Phase and ordered by
// Order, highest first. Contributions are registered on a Provider at
// setup. The first read seals the provider; later registration fails
// with ErrProviderSealed.
//
// # Interceptors
//
// DrawShape accepts fill and stroke interceptors that replace painting.
// The picker uses them to run point-in-path and point-in-stroke tests on
// exactly the path the renderer draws.
//
// # Usage
//
//	svc := render.NewService()
//	img, _ := surface.NewContextByName("image", surface.DefaultOptions(200, 200))
//	if err := svc.Render(ctx, img, nodes...); err != nil {
//		log.Printf("some nodes failed: %v", err)
//	}
package render
