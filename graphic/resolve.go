// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/theme"
)

// Resolver reads a node's attributes with three-level fallback: the
// explicit value (own, then host glyph), the theme default for the node
// type, then the caller's hard-coded fallback.
type Resolver struct {
	g        *Graphic
	defaults ggraph.Attrs
}

// Resolve returns a resolver over t. A nil theme uses the node's own.
func (g *Graphic) Resolve(t *theme.Theme) Resolver {
	if t == nil {
		t = g.Theme()
	}
	return Resolver{g: g, defaults: t.For(string(g.typ))}
}

// Value returns the explicit or theme value for key.
func (r Resolver) Value(key string) (any, bool) {
	if v, ok := r.g.attrs.get(key); ok {
		return v, true
	}
	v, ok := r.defaults[key]
	return v, ok
}

// Float resolves a numeric attribute. Non-numeric values fall back.
func (r Resolver) Float(key string, fallback float64) float64 {
	v, ok := r.Value(key)
	if !ok {
		return fallback
	}
	if f, ok := ggraph.ToFloat(v); ok {
		return f
	}
	return fallback
}

// String resolves a string attribute.
func (r Resolver) String(key, fallback string) string {
	if s, ok := r.stringValue(key); ok {
		return s
	}
	return fallback
}

func (r Resolver) stringValue(key string) (string, bool) {
	v, ok := r.Value(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool resolves a boolean attribute.
func (r Resolver) Bool(key string, fallback bool) bool {
	v, ok := r.Value(key)
	if !ok {
		return fallback
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}
