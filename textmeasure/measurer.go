// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

import (
	"math"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/cache"
)

// Metrics is the result of a live measurement. Ascent and descent are
// positive distances from the baseline.
type Metrics struct {
	Width float64

	// Ink extents of the measured glyphs.
	ActualAscent  float64
	ActualDescent float64

	// Extents of the font's bounding box.
	FontAscent  float64
	FontDescent float64
}

// Provider performs live text measurement.
type Provider interface {
	Measure(text string, style Style) (Metrics, error)
}

// Size is a measured width and height.
type Size struct {
	Width  float64
	Height float64
}

// Measurer measures and clips text. It is safe for concurrent use if its
// Provider is.
type Measurer struct {
	provider Provider
	defaults Style
	widths   *cache.Cache[string, float64]
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithProvider sets the live measurement provider. Without one, all
// measurements are estimated.
func WithProvider(p Provider) Option {
	return func(m *Measurer) {
		m.provider = p
	}
}

// WithDefaults sets the style that per-call styles are merged over.
func WithDefaults(s Style) Option {
	return func(m *Measurer) {
		m.defaults = s
	}
}

// WithCacheCapacity sets the per-shard capacity of the width cache.
func WithCacheCapacity(n int) Option {
	return func(m *Measurer) {
		m.widths = cache.New[string, float64](n, cache.StringHasher)
	}
}

// New creates a Measurer.
func New(opts ...Option) *Measurer {
	m := &Measurer{defaults: Style{FontSize: DefaultFontSize}}
	for _, opt := range opts {
		opt(m)
	}
	if m.widths == nil {
		m.widths = cache.New[string, float64](cache.DefaultCapacity, cache.StringHasher)
	}
	return m
}

// Live reports whether a live measurement provider is configured.
func (m *Measurer) Live() bool {
	return m.provider != nil
}

func (m *Measurer) resolve(s Style) Style {
	return m.defaults.Merge(s)
}

// Estimate approximates the size of text without a font: runes below
// U+0080 are 0.8 em wide, all others 1 em. The width is truncated toward
// zero and the height is the font size.
func Estimate(text string, fontSize float64) Size {
	var single, double int
	for _, r := range text {
		if r < 128 {
			single++
		} else {
			double++
		}
	}
	w := 0.8*float64(single)*fontSize + float64(double)*fontSize
	return Size{Width: math.Trunc(w), Height: fontSize}
}

// measure returns live metrics, or false when measurement must be
// estimated.
func (m *Measurer) measure(text string, s Style) (Metrics, bool) {
	if m.provider == nil {
		return Metrics{}, false
	}
	mt, err := m.provider.Measure(text, s)
	if err != nil {
		ggraph.Logger().Debug("textmeasure: live measurement failed, estimating", "err", err)
		return Metrics{}, false
	}
	return mt, true
}

// MeasureWidth returns the advance width of text.
func (m *Measurer) MeasureWidth(text string, style Style) float64 {
	s := m.resolve(style)
	if m.provider == nil {
		return Estimate(text, s.size()).Width
	}
	key := s.key() + "\x00" + text
	if w, ok := m.widths.Get(key); ok {
		return w
	}
	mt, ok := m.measure(text, s)
	if !ok {
		return Estimate(text, s.size()).Width
	}
	m.widths.Set(key, mt.Width)
	return mt.Width
}

// MeasureText returns the width of text and the height of the font's
// bounding box.
func (m *Measurer) MeasureText(text string, style Style) Size {
	s := m.resolve(style)
	mt, ok := m.measure(text, s)
	if !ok {
		return Estimate(text, s.size())
	}
	return Size{Width: mt.Width, Height: mt.FontAscent + mt.FontDescent}
}

// MeasurePixelHeight returns the height of the ink actually covered by
// the glyphs of text.
func (m *Measurer) MeasurePixelHeight(text string, style Style) float64 {
	s := m.resolve(style)
	mt, ok := m.measure(text, s)
	if !ok {
		return s.size()
	}
	return math.Abs(mt.ActualAscent + mt.ActualDescent)
}

// MeasureBoundHeight returns the height of the font's bounding box.
func (m *Measurer) MeasureBoundHeight(text string, style Style) float64 {
	s := m.resolve(style)
	mt, ok := m.measure(text, s)
	if !ok {
		return s.size()
	}
	return math.Abs(mt.FontAscent + mt.FontDescent)
}

// CacheStats reports width cache statistics.
func (m *Measurer) CacheStats() cache.Stats {
	return m.widths.Stats()
}
