// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestSVGContext_Paths(t *testing.T) {
	c := NewSVGContext(20, 20)
	c.SetFillStyle(SolidPaint(red))
	c.SetStrokeStyle(SolidPaint(color.NRGBA{B: 255, A: 255}))
	c.SetLineWidth(2)
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	c.Fill()
	c.Stroke()

	out := string(c.Bytes())
	for _, want := range []string{
		`<svg`,
		`d="M0 0 L10 0 L10 10 L0 10 Z"`,
		`fill:#ff0000;fill-opacity:1;stroke:none`,
		`stroke:#0000ff`,
		`stroke-width:2`,
		`stroke-linecap:butt`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "<path") != 2 {
		t.Errorf("want 2 path elements, got %d", strings.Count(out, "<path"))
	}
}

func TestSVGContext_Gradient(t *testing.T) {
	c := NewSVGContext(20, 20)
	c.SetFillStyle(Paint{Gradient: &Gradient{
		Kind: GradientLinear,
		X1:   10,
		Stops: []GradientStop{
			{Offset: 0, Color: red},
			{Offset: 1, Color: color.NRGBA{B: 255, A: 255}},
		},
	}})
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	c.Fill()

	out := string(c.Bytes())
	for _, want := range []string{`<linearGradient`, `id="g1"`, `url(#g1)`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSVGContext_TextAndEnd(t *testing.T) {
	c := NewSVGContext(50, 20)
	c.FillText("hi", 1, 15)
	first := string(c.Bytes())
	if !strings.Contains(first, ">hi</text>") {
		t.Errorf("text missing:\n%s", first)
	}

	// Bytes ends the document once.
	second := string(c.Bytes())
	if strings.Count(second, "</svg>") != 1 {
		t.Errorf("document ended %d times", strings.Count(second, "</svg>"))
	}

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil || n != int64(len(second)) {
		t.Errorf("WriteTo = %d, %v", n, err)
	}
}

func TestSVGContext_EmptyPathIgnored(t *testing.T) {
	c := NewSVGContext(10, 10)
	c.Fill()
	c.Stroke()
	if strings.Contains(string(c.Bytes()), "<path") {
		t.Error("empty path produced an element")
	}
}
