// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"errors"
	"math"
	"testing"
)

func TestDefault_For(t *testing.T) {
	circle := Default().For(TypeCircle)

	if v, _ := circle.Float("radius"); v != 1 {
		t.Errorf("circle radius = %v, want 1", v)
	}
	if v, _ := circle.Float("endAngle"); v != 2*math.Pi {
		t.Errorf("circle endAngle = %v, want 2π", v)
	}
	// Common values flow into every section.
	if v, _ := circle.Float("lineWidth"); v != 1 {
		t.Errorf("circle lineWidth = %v, want 1", v)
	}
	if fill, _ := circle.Bool("fill"); fill {
		t.Error("circle fill default should be false")
	}

	text := Default().For(TypeText)
	if fill, _ := text.Bool("fill"); !fill {
		t.Error("text fill default should be true")
	}
}

func TestFor_NilTheme(t *testing.T) {
	var th *Theme
	if v, _ := th.For(TypeRect).Float("opacity"); v != 1 {
		t.Errorf("nil theme opacity = %v, want 1", v)
	}
}

func TestMerge(t *testing.T) {
	override := New()
	override.Common["lineWidth"] = 3.0
	override.Types[TypeCircle] = map[string]any{"radius": 8.0}

	m := Merge(Default(), override)

	c := m.For(TypeCircle)
	if v, _ := c.Float("radius"); v != 8 {
		t.Errorf("radius = %v, want 8", v)
	}
	if v, _ := c.Float("lineWidth"); v != 3 {
		t.Errorf("lineWidth = %v, want 3", v)
	}
	if v, _ := c.Float("endAngle"); v != 2*math.Pi {
		t.Errorf("endAngle = %v, want inherited 2π", v)
	}

	// Merge never mutates its inputs.
	if v, _ := Default().For(TypeCircle).Float("radius"); v != 1 {
		t.Errorf("default radius changed to %v", v)
	}
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/dark.yaml", "testdata/dark.toml"} {
		t.Run(path, func(t *testing.T) {
			th, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			c := th.For(TypeCircle)
			if v, _ := c.Float("radius"); v != 5 {
				t.Errorf("radius = %v, want 5", v)
			}
			if s, _ := c.String("fillColor"); s != "steelblue" {
				t.Errorf("fillColor = %q, want steelblue", s)
			}
			if v, _ := c.Float("lineWidth"); v != 2 {
				t.Errorf("lineWidth = %v, want 2", v)
			}
			// Keys absent from the file come from Default.
			if v, _ := c.Float("opacity"); v != 1 {
				t.Errorf("opacity = %v, want 1", v)
			}
			if v, _ := th.For(TypeText).Float("fontSize"); v != 12 {
				t.Errorf("text fontSize = %v, want 12", v)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("testdata/theme.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(.json) err = %v, want ErrUnknownFormat", err)
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("Load(missing) err = nil, want error")
	}
	if _, err := Parse([]byte("common: [1, 2"), FormatYAML); err == nil {
		t.Error("Parse(bad yaml) err = nil, want error")
	}
}
