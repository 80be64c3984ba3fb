// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// RunDirection tells how a vertical run advances.
type RunDirection int

const (
	// RunFixed is an upright glyph occupying one em box.
	RunFixed RunDirection = 0
	// RunMeasured is rotated text advancing by its measured width.
	RunMeasured RunDirection = 1
)

// Run is a piece of vertical text.
type Run struct {
	Text      string
	Direction RunDirection
	Width     float64
}

// VerticalResult is the outcome of vertical clipping.
type VerticalResult struct {
	Runs  []Run
	Width float64
}

// Text joins the run texts.
func (r VerticalResult) Text() string {
	var sb strings.Builder
	for _, run := range r.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// BuildVerticalList splits text into vertical runs. Each wide or
// fullwidth grapheme becomes its own RunFixed run; consecutive narrow
// graphemes are grouped into one RunMeasured run.
func BuildVerticalList(text string) []Run {
	var (
		runs   []Run
		narrow strings.Builder
	)
	flush := func() {
		if narrow.Len() > 0 {
			runs = append(runs, Run{Text: narrow.String(), Direction: RunMeasured})
			narrow.Reset()
		}
	}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if isWide(g.Runes()[0]) {
			flush()
			runs = append(runs, Run{Text: cluster, Direction: RunFixed})
			continue
		}
		narrow.WriteString(cluster)
	}
	flush()
	return runs
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// runWidths fills in each run's advance.
func (m *Measurer) runWidths(runs []Run, style Style) []Run {
	size := m.resolve(style).size()
	out := make([]Run, len(runs))
	for i, r := range runs {
		out[i] = r
		if r.Direction == RunFixed {
			out[i].Width = size
		} else {
			out[i].Width = m.MeasureWidth(r.Text, style)
		}
	}
	return out
}

// MeasureVertical returns the total advance of runs.
func (m *Measurer) MeasureVertical(runs []Run, style Style) float64 {
	var total float64
	for _, r := range m.runWidths(runs, style) {
		total += r.Width
	}
	return total
}

// ClipVertical keeps whole runs while they fit in width. The first run
// that does not fit is clipped by bisection if it has more than one
// character and dropped otherwise.
func (m *Measurer) ClipVertical(runs []Run, style Style, width float64) VerticalResult {
	if len(runs) == 0 {
		return VerticalResult{}
	}
	measured := m.runWidths(runs, style)

	var (
		out    []Run
		length float64
		i      int
	)
	for ; i < len(measured); i++ {
		if length+measured[i].Width > width {
			break
		}
		length += measured[i].Width
		out = append(out, measured[i])
	}

	if i < len(measured) {
		runes := []rune(measured[i].Text)
		if len(runes) > 1 {
			clipped := m.bisect(runes, style, width-length, 0, len(runes)-1)
			if clipped.Text != "" {
				r := measured[i]
				r.Text = clipped.Text
				r.Width = clipped.Width
				out = append(out, r)
				length += clipped.Width
			}
		}
	}
	return VerticalResult{Runs: out, Width: length}
}

// ClipVerticalWithSuffix is ClipVertical with a trailing suffix run
// appended when clipping happened. If the suffix alone does not fit, the
// result is the same as ClipVertical.
func (m *Measurer) ClipVerticalWithSuffix(runs []Run, style Style, width float64, suffix string) VerticalResult {
	if suffix == "" {
		return m.ClipVertical(runs, style, width)
	}
	if len(runs) == 0 {
		return VerticalResult{}
	}

	plain := m.ClipVertical(runs, style, width)
	if len(plain.Runs) == len(runs) && plain.Runs[len(runs)-1].Text == runs[len(runs)-1].Text {
		return plain
	}

	sw := m.MeasureWidth(suffix, style)
	if sw > width {
		return plain
	}
	out := m.ClipVertical(runs, style, width-sw)
	out.Runs = append(out.Runs, Run{Text: suffix, Direction: RunMeasured, Width: sw})
	out.Width += sw
	return out
}
