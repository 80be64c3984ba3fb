// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/theme"
)

// ErrChildren is returned when a non-glyph node lists children.
var ErrChildren = errors.New("scene: only glyph nodes have children")

// UnknownTypeError is returned for a node spec with an unknown type.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("scene: unknown node type %q", e.Type)
}

// File is the decoded form of a scene file.
type File struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background" toml:"background"`

	// Theme is merged over theme.Default.
	Theme *theme.Theme `yaml:"theme" toml:"theme"`

	Nodes []NodeSpec `yaml:"nodes" toml:"nodes"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	ID       string                  `yaml:"id" toml:"id"`
	Type     string                  `yaml:"type" toml:"type"`
	Attrs    ggraph.Attrs            `yaml:"attrs" toml:"attrs"`
	States   map[string]ggraph.Attrs `yaml:"states" toml:"states"`
	Children []NodeSpec              `yaml:"children" toml:"children"`
}

// Load reads a scene file. The format is chosen by extension as for
// theme.Load.
func Load(path string) (*Scene, error) {
	var format theme.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = theme.FormatYAML
	case ".toml":
		format = theme.FormatTOML
	default:
		return nil, fmt.Errorf("%w: %s", theme.ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes and builds a scene.
func Parse(data []byte, format theme.Format) (*Scene, error) {
	var f File
	var err error
	switch format {
	case theme.FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case theme.FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", theme.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", format, err)
	}
	return Build(&f)
}

// Build creates the nodes described by f.
func Build(f *File) (*Scene, error) {
	s := New()
	if f.Width > 0 {
		s.Width = f.Width
	}
	if f.Height > 0 {
		s.Height = f.Height
	}
	s.Background = f.Background
	if f.Theme != nil {
		s.Theme = theme.Merge(theme.Default(), f.Theme)
	}

	for i, spec := range f.Nodes {
		n, err := s.build(spec)
		if err != nil {
			return nil, fmt.Errorf("scene: node %d: %w", i, err)
		}
		s.Add(n)
	}
	ggraph.Logger().Debug("scene built", "nodes", len(s.Nodes), "ids", len(s.ids))
	return s, nil
}

func (s *Scene) build(spec NodeSpec) (graphic.Node, error) {
	var n graphic.Node
	switch graphic.Type(spec.Type) {
	case graphic.TypeCircle:
		n = graphic.NewCircle(spec.Attrs)
	case graphic.TypeArc:
		n = graphic.NewArc(spec.Attrs)
	case graphic.TypeRect:
		n = graphic.NewRect(spec.Attrs)
	case graphic.TypeLine:
		n = graphic.NewLine(spec.Attrs)
	case graphic.TypeText:
		n = graphic.NewText(spec.Attrs)
	case graphic.TypeGlyph:
		g := graphic.NewGlyph(spec.Attrs)
		children := make([]graphic.Node, 0, len(spec.Children))
		for i, cs := range spec.Children {
			c, err := s.build(cs)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children = append(children, c)
		}
		g.SetSubGraphic(children...)
		n = g
	default:
		return nil, &UnknownTypeError{Type: spec.Type}
	}

	if len(spec.Children) > 0 && n.Type() != graphic.TypeGlyph {
		return nil, ErrChildren
	}
	if len(spec.States) > 0 {
		if g, ok := n.(*graphic.Glyph); ok {
			states := make(map[string]graphic.GlyphState, len(spec.States))
			for name, attrs := range spec.States {
				states[name] = graphic.GlyphState{Attributes: attrs}
			}
			g.SetGlyphStates(states)
		} else {
			n.Base().SetStates(spec.States)
		}
	}
	if s.Theme != nil {
		n.Base().SetTheme(s.Theme)
	}
	if spec.ID != "" {
		s.Name(spec.ID, n)
	}
	return n, nil
}
