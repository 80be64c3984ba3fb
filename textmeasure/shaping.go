// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapingProvider measures text with HarfBuzz shaping from
// go-text/typesetting, so kerning and ligatures affect widths.
// Safe for concurrent use.
type ShapingProvider struct {
	font       *font.Font
	shaperPool sync.Pool
}

// NewShapingProvider parses TTF or OTF data into a shaping provider.
func NewShapingProvider(data []byte) (*ShapingProvider, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font: %w", err)
	}
	return &ShapingProvider{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Measure implements Provider. Style family and weight are ignored; the
// provider has a single font.
func (p *ShapingProvider) Measure(text string, style Style) (Metrics, error) {
	if text == "" {
		return Metrics{}, nil
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(p.font),
		Size:      fixed.Int26_6(style.size() * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	hb := p.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	p.shaperPool.Put(hb)

	// go-text reports descents as negative offsets from the baseline.
	return Metrics{
		Width:         fixedToFloat(out.Advance),
		ActualAscent:  fixedToFloat(out.GlyphBounds.Ascent),
		ActualDescent: -fixedToFloat(out.GlyphBounds.Descent),
		FontAscent:    fixedToFloat(out.LineBounds.Ascent),
		FontDescent:   -fixedToFloat(out.LineBounds.Descent),
	}, nil
}
