// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

// ClipResult is clipped text and its measured width.
type ClipResult struct {
	Text  string
	Width float64
}

// Clip returns the longest prefix of text whose width does not exceed
// width. Characters are runes; a rune is never split.
func (m *Measurer) Clip(text string, style Style, width float64) ClipResult {
	if text == "" {
		return ClipResult{}
	}
	full := m.MeasureWidth(text, style)
	if full <= width {
		return ClipResult{Text: text, Width: full}
	}
	runes := []rune(text)
	if m.MeasureWidth(string(runes[:1]), style) > width {
		return ClipResult{}
	}
	return m.bisect(runes, style, width, 0, len(runes)-1)
}

// bisect searches prefix lengths in [left+1, right+1]. At each probe mid
// it measures the prefix ending at rune mid. A prefix that is too wide
// first checks the prefix one rune shorter; a prefix that is narrower
// than width first checks the one rune longer; equality is an exact fit.
func (m *Measurer) bisect(runes []rune, style Style, width float64, left, right int) ClipResult {
	for {
		mid := (left + right) / 2
		sub := string(runes[:mid+1])
		w := m.MeasureWidth(sub, style)

		switch {
		case w > width:
			if mid == 0 {
				return ClipResult{}
			}
			shorter := string(runes[:mid])
			sw := m.MeasureWidth(shorter, style)
			if sw <= width {
				return ClipResult{Text: shorter, Width: sw}
			}
			right = mid

		case w < width:
			if mid >= len(runes)-1 {
				return ClipResult{Text: string(runes), Width: m.MeasureWidth(string(runes), style)}
			}
			longer := string(runes[:mid+2])
			lw := m.MeasureWidth(longer, style)
			if lw > width {
				return ClipResult{Text: sub, Width: w}
			}
			if lw == width {
				return ClipResult{Text: longer, Width: lw}
			}
			// runes[:mid+2] fits, so the answer ends at mid+1 or later.
			left = mid + 1

		default:
			return ClipResult{Text: sub, Width: w}
		}
	}
}

// ClipWithSuffix clips text and appends suffix when clipping happened.
// Room for the suffix is reserved from width. If the suffix alone does
// not fit, the result is the same as Clip.
func (m *Measurer) ClipWithSuffix(text string, style Style, width float64, suffix string) ClipResult {
	if suffix == "" {
		return m.Clip(text, style, width)
	}
	if text == "" {
		return ClipResult{}
	}
	full := m.MeasureWidth(text, style)
	if full <= width {
		return ClipResult{Text: text, Width: full}
	}
	sw := m.MeasureWidth(suffix, style)
	if sw > width {
		return m.Clip(text, style, width)
	}
	runes := []rune(text)
	body := m.bisect(runes, style, width-sw, 0, len(runes)-1)
	return ClipResult{Text: body.Text + suffix, Width: body.Width + sw}
}
