// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package theme holds default attribute values for graphic nodes.
//
// A Theme has a common section applied to every node type and one section
// per type that overrides it. Renderers resolve an attribute in three
// steps: the node's explicit value, then the theme default, then a
// hard-coded fallback.
package theme

import (
	"maps"
	"math"
	"sync"

	"github.com/gogpu/ggraph"
)

// Node type names used as theme sections.
const (
	TypeCircle = "circle"
	TypeArc    = "arc"
	TypeRect   = "rect"
	TypeLine   = "line"
	TypeText   = "text"
	TypeGlyph  = "glyph"
)

// Theme is a set of default attributes. A Theme must not be modified
// after it is first used by For.
type Theme struct {
	Common ggraph.Attrs            `yaml:"common" toml:"common"`
	Types  map[string]ggraph.Attrs `yaml:"types" toml:"types"`

	mu       sync.Mutex
	resolved map[string]ggraph.Attrs
}

// New creates an empty theme.
func New() *Theme {
	return &Theme{
		Common: ggraph.Attrs{},
		Types:  map[string]ggraph.Attrs{},
	}
}

// For returns the defaults for a node type: the common section overlaid
// with the type section. The result is shared and must be treated as
// read-only.
func (t *Theme) For(typ string) ggraph.Attrs {
	if t == nil {
		return Default().For(typ)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if a, ok := t.resolved[typ]; ok {
		return a
	}
	a := t.Common.Clone()
	maps.Copy(a, t.Types[typ])
	if t.resolved == nil {
		t.resolved = make(map[string]ggraph.Attrs)
	}
	t.resolved[typ] = a
	return a
}

// Merge returns a new theme with override's values taking precedence
// over base. Either argument may be nil.
func Merge(base, override *Theme) *Theme {
	out := New()
	for _, t := range []*Theme{base, override} {
		if t == nil {
			continue
		}
		maps.Copy(out.Common, t.Common)
		for typ, attrs := range t.Types {
			section, ok := out.Types[typ]
			if !ok {
				section = ggraph.Attrs{}
				out.Types[typ] = section
			}
			maps.Copy(section, attrs)
		}
	}
	return out
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the built-in theme.
func Default() *Theme {
	defaultOnce.Do(func() {
		defaultTheme = &Theme{
			Common: ggraph.Attrs{
				"visible":       true,
				"opacity":       1.0,
				"x":             0.0,
				"y":             0.0,
				"dx":            0.0,
				"dy":            0.0,
				"scaleX":        1.0,
				"scaleY":        1.0,
				"angle":         0.0,
				"fill":          false,
				"fillColor":     "#000000",
				"fillOpacity":   1.0,
				"stroke":        false,
				"strokeColor":   "#000000",
				"strokeOpacity": 1.0,
				"lineWidth":     1.0,
				"lineCap":       "butt",
				"lineJoin":      "miter",
				"pickMode":      "accurate",
				"shadowBlur":    0.0,
				"shadowColor":   "#000000",
				"shadowOffsetX": 0.0,
				"shadowOffsetY": 0.0,

				"texture":        "",
				"textureColor":   "rgba(0,0,0,0.4)",
				"textureSize":    10.0,
				"texturePadding": 2.0,
			},
			Types: map[string]ggraph.Attrs{
				TypeCircle: {
					"radius":     1.0,
					"startAngle": 0.0,
					"endAngle":   2 * math.Pi,
				},
				TypeArc: {
					"innerRadius":  0.0,
					"outerRadius":  1.0,
					"startAngle":   0.0,
					"endAngle":     2 * math.Pi,
					"cornerRadius": 0.0,
				},
				TypeRect: {
					"width":        0.0,
					"height":       0.0,
					"cornerRadius": 0.0,
				},
				TypeLine: {
					"stroke":    true,
					"curveType": "linear",
					"closePath": false,
				},
				TypeText: {
					"fill":         true,
					"text":         "",
					"fontSize":     16.0,
					"fontFamily":   "sans-serif",
					"fontWeight":   "normal",
					"textAlign":    "left",
					"textBaseline": "alphabetic",
					"direction":    "horizontal",
					"ellipsis":     "…",
				},
				TypeGlyph: {},
			},
		}
	})
	return defaultTheme
}
