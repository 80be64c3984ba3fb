// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
)

// Builder provides a fluent API for constructing scenes. Nodes are
// appended in call order; Glyph opens a nested builder for its children.
//
// Example:
//
//	s := scene.NewBuilder().
//	    Size(200, 100).
//	    Rect(ggraph.Attrs{"width": 200, "height": 100, "fill": "#eee"}).
//	    Glyph(ggraph.Attrs{"x": 50, "y": 50, "fill": "tomato"}, func(b *scene.Builder) {
//	        b.Circle(ggraph.Attrs{"radius": 10}).
//	          Rect(ggraph.Attrs{"dx": 15, "width": 30, "height": 4})
//	    }).
//	    Build()
type Builder struct {
	scene *Scene
	nodes []graphic.Node
	last  graphic.Node
}

// NewBuilder creates a builder with an empty scene.
func NewBuilder() *Builder {
	return &Builder{scene: New()}
}

// Size sets the canvas size.
func (b *Builder) Size(width, height int) *Builder {
	b.scene.Width, b.scene.Height = width, height
	return b
}

// Background sets the canvas color.
func (b *Builder) Background(color string) *Builder {
	b.scene.Background = color
	return b
}

// Node appends an existing node.
func (b *Builder) Node(n graphic.Node) *Builder {
	b.nodes = append(b.nodes, n)
	b.last = n
	return b
}

// Circle appends a circle.
func (b *Builder) Circle(attrs ggraph.Attrs) *Builder {
	return b.Node(graphic.NewCircle(attrs))
}

// Arc appends an arc.
func (b *Builder) Arc(attrs ggraph.Attrs) *Builder {
	return b.Node(graphic.NewArc(attrs))
}

// Rect appends a rectangle.
func (b *Builder) Rect(attrs ggraph.Attrs) *Builder {
	return b.Node(graphic.NewRect(attrs))
}

// Line appends a line.
func (b *Builder) Line(attrs ggraph.Attrs) *Builder {
	return b.Node(graphic.NewLine(attrs))
}

// Text appends a text node.
func (b *Builder) Text(attrs ggraph.Attrs) *Builder {
	return b.Node(graphic.NewText(attrs))
}

// Glyph appends a glyph whose children are built by fn.
func (b *Builder) Glyph(attrs ggraph.Attrs, fn func(*Builder), opts ...graphic.GlyphOption) *Builder {
	g := graphic.NewGlyph(attrs, opts...)
	if fn != nil {
		child := &Builder{scene: b.scene}
		fn(child)
		g.SetSubGraphic(child.nodes...)
	}
	return b.Node(g)
}

// ID names the most recently appended node.
func (b *Builder) ID(id string) *Builder {
	if b.last != nil {
		b.scene.Name(id, b.last)
	}
	return b
}

// Build returns the scene. The builder must not be used afterwards.
func (b *Builder) Build() *Scene {
	b.scene.Add(b.nodes...)
	return b.scene
}
