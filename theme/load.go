// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggraph"
)

// Format is a theme file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for theme files whose encoding cannot be
// determined from the extension.
var ErrUnknownFormat = errors.New("theme: unknown file format")

// Load reads a theme file. The format is chosen by extension
// (.yaml, .yml or .toml). The loaded values are merged over Default.
func Load(path string) (*Theme, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return Merge(Default(), t), nil
}

// Parse decodes a theme without merging it over the defaults.
func Parse(data []byte, format Format) (*Theme, error) {
	t := New()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, t)
	case FormatTOML:
		err = toml.Unmarshal(data, t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("theme: decode %s: %w", format, err)
	}
	if t.Common == nil {
		t.Common = ggraph.Attrs{}
	}
	if t.Types == nil {
		t.Types = map[string]ggraph.Attrs{}
	}
	ggraph.Logger().Debug("theme parsed", "format", string(format), "types", len(t.Types))
	return t, nil
}
