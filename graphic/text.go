// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/textmeasure"
)

// AlphabeticAscent is the share of the line box above an alphabetic
// baseline.
const AlphabeticAscent = 0.79

var textMeasurer atomic.Pointer[textmeasure.Measurer]

func init() {
	textMeasurer.Store(textmeasure.New())
}

// SetTextMeasurer sets the measurer used by Text nodes without their own.
// Nil restores the estimating measurer.
func SetTextMeasurer(m *textmeasure.Measurer) {
	if m == nil {
		m = textmeasure.New()
	}
	textMeasurer.Store(m)
}

// TextMeasurer returns the shared text measurer.
func TextMeasurer() *textmeasure.Measurer {
	return textMeasurer.Load()
}

// TextLayout is a measured and clipped text node.
type TextLayout struct {
	// Text is the horizontal text after clipping.
	Text string

	// Runs holds the vertical runs after clipping.
	Runs []textmeasure.Run

	Vertical bool
	Clipped  bool
	Style    textmeasure.Style

	// Box is the local box, already aligned around (dx, dy).
	Box ggraph.Bounds

	// Baseline is the local y of the alphabetic baseline of horizontal
	// text.
	Baseline float64
}

// Text is a single line of text anchored at (dx, dy). A positive
// maxLineWidth clips it with the ellipsis suffix. Direction "vertical"
// stacks graphemes top to bottom; textAlign then applies along y.
type Text struct {
	Graphic
	measurer  *textmeasure.Measurer
	layout    *TextLayout
	layoutGen uint64
}

// NewText creates a text node.
func NewText(attrs ggraph.Attrs) *Text {
	t := new(Text)
	t.init(TypeText, attrs, t)
	return t
}

// SetMeasurer sets the node's measurer. Nil uses the shared one.
func (t *Text) SetMeasurer(m *textmeasure.Measurer) {
	t.measurer = m
	t.markDirty(TagShapeAndBounds | TagBounds)
}

// Measurer returns the measurer in use.
func (t *Text) Measurer() *textmeasure.Measurer {
	if t.measurer != nil {
		return t.measurer
	}
	return TextMeasurer()
}

// Style returns the resolved font style.
func (t *Text) Style() textmeasure.Style {
	return textmeasure.Style{
		FontSize:   t.Float("fontSize", textmeasure.DefaultFontSize),
		FontFamily: t.String("fontFamily", ""),
		FontWeight: t.String("fontWeight", ""),
		FontStyle:  t.String("fontStyle", ""),
	}
}

// Content returns the resolved text attribute. Numbers are formatted.
func (t *Text) Content() string {
	v, ok := t.Value("text")
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := ggraph.ToFloat(v); ok {
		return formatNumber(f)
	}
	return ""
}

func (t *Text) ellipsis() string {
	v, _ := t.Value("ellipsis")
	switch e := v.(type) {
	case string:
		return e
	case bool:
		if e {
			return "…"
		}
	}
	return ""
}

// Layout measures and clips the text. It is recomputed only after a
// shape invalidation.
func (t *Text) Layout() *TextLayout {
	if t.layout != nil && t.layoutGen == t.shapeGen {
		return t.layout
	}
	t.layout = t.computeLayout()
	t.layoutGen = t.shapeGen
	return t.layout
}

func (t *Text) computeLayout() *TextLayout {
	m := t.Measurer()
	style := t.Style()
	text := t.Content()
	maxWidth := t.Float("maxLineWidth", 0)
	suffix := t.ellipsis()
	l := &TextLayout{Style: style}

	var width float64
	if t.String("direction", "horizontal") == "vertical" {
		l.Vertical = true
		runs := textmeasure.BuildVerticalList(text)
		if maxWidth > 0 {
			res := m.ClipVerticalWithSuffix(runs, style, maxWidth, suffix)
			l.Runs, width = res.Runs, res.Width
			l.Clipped = res.Text() != text
		} else {
			res := m.ClipVertical(runs, style, math.Inf(1))
			l.Runs, width = res.Runs, res.Width
		}
	} else {
		if maxWidth > 0 {
			res := m.ClipWithSuffix(text, style, maxWidth, suffix)
			l.Text, width = res.Text, res.Width
			l.Clipped = res.Text != text
		} else {
			l.Text, width = text, m.MeasureWidth(text, style)
		}
	}

	lineHeight := style.FontSize
	dx, dy := t.Float("dx", 0), t.Float("dy", 0)
	if l.Vertical {
		y0 := dy + alignOffset(t.String("textAlign", "left"), width)
		l.Box = ggraph.NewBounds(dx-lineHeight/2, y0, dx+lineHeight/2, y0+width)
		return l
	}
	x0 := dx + alignOffset(t.String("textAlign", "left"), width)
	y0 := dy + baselineOffset(t.String("textBaseline", "alphabetic"), lineHeight)
	l.Box = ggraph.NewBounds(x0, y0, x0+width, y0+lineHeight)
	l.Baseline = y0 + lineHeight*AlphabeticAscent
	return l
}

func alignOffset(align string, width float64) float64 {
	switch align {
	case "center":
		return -width / 2
	case "right", "end":
		return -width
	}
	return 0
}

func baselineOffset(baseline string, height float64) float64 {
	switch baseline {
	case "top":
		return 0
	case "middle":
		return -height / 2
	case "bottom":
		return -height
	}
	return -height * AlphabeticAscent
}

func (t *Text) valid() bool {
	return t.Content() != ""
}

func (t *Text) localBounds() ggraph.Bounds {
	if !t.valid() {
		return ggraph.EmptyBounds()
	}
	return t.Layout().Box
}

func (t *Text) orientedBounds() {}

// Clone returns a copy with its own attribute bag and measurer.
func (t *Text) Clone() Node {
	out := NewText(t.attrs.own)
	t.cloneInto(&out.Graphic)
	out.measurer = t.measurer
	return out
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
