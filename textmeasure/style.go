// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

import (
	"strconv"

	"github.com/jinzhu/copier"

	"github.com/gogpu/ggraph"
)

// DefaultFontSize is used when neither the call nor the Measurer sets one.
const DefaultFontSize = 16

// Style describes the font used for a measurement. Zero fields are unset.
type Style struct {
	FontSize   float64
	FontFamily string
	FontWeight string
	FontStyle  string
}

// Merge returns s with every non-zero field of override applied. If the
// copy fails, s is returned unchanged and the error is logged.
func (s Style) Merge(override Style) Style {
	out := s
	if err := copier.CopyWithOption(&out, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		ggraph.Logger().Warn("textmeasure: style merge failed", "err", err)
		return s
	}
	return out
}

// size returns the font size, or DefaultFontSize when unset.
func (s Style) size() float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return DefaultFontSize
}

// key identifies the style in the width cache.
func (s Style) key() string {
	buf := strconv.AppendFloat(nil, s.size(), 'g', -1, 64)
	buf = append(buf, '/')
	buf = append(buf, s.FontFamily...)
	buf = append(buf, '/')
	buf = append(buf, s.FontWeight...)
	buf = append(buf, '/')
	buf = append(buf, s.FontStyle...)
	return string(buf)
}
