// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClip_Edges(t *testing.T) {
	m := New(WithProvider(&advanceProvider{advance: 10}))

	tests := []struct {
		name  string
		text  string
		width float64
		want  ClipResult
	}{
		{"empty text", "", 100, ClipResult{}},
		{"fits", "abc", 30, ClipResult{"abc", 30}},
		{"first rune too wide", "abc", 9, ClipResult{}},
		{"zero budget", "abc", 0, ClipResult{}},
		{"negative budget", "abc", -5, ClipResult{}},
		{"exact prefix", "abcdef", 30, ClipResult{"abc", 30}},
		{"between prefixes", "abcdef", 35, ClipResult{"abc", 30}},
		{"one rune", "abcdef", 10, ClipResult{"a", 10}},
		{"multibyte", "中文字符", 25, ClipResult{"中文", 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Clip(tt.text, Style{}, tt.width); got != tt.want {
				t.Errorf("Clip(%q, %v) = %+v, want %+v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func clipProviders() map[string]*Measurer {
	return map[string]*Measurer{
		"estimate": New(),
		"advance":  New(WithProvider(&advanceProvider{advance: 6})),
		"table":    New(WithProvider(tableProvider{})),
	}
}

var clipTexts = []string{
	"a",
	"hello",
	"illWMiill.WW",
	"The quick brown fox",
	"中文abc字",
	"MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMM",
}

func TestClip_Properties(t *testing.T) {
	for name, m := range clipProviders() {
		t.Run(name, func(t *testing.T) {
			for _, s := range clipTexts {
				full := m.MeasureWidth(s, Style{})
				prevLen := -1
				for w := 0.0; w <= full+10; w += 0.5 {
					got := m.Clip(s, Style{}, w)

					if got.Width > w {
						t.Fatalf("Clip(%q, %v).Width = %v exceeds budget", s, w, got.Width)
					}
					if w >= full && got.Text != s {
						t.Fatalf("Clip(%q, %v) = %q, want unclipped", s, w, got.Text)
					}
					if !strings.HasPrefix(s, got.Text) {
						t.Fatalf("Clip(%q, %v) = %q is not a prefix", s, w, got.Text)
					}
					n := utf8.RuneCountInString(got.Text)
					if n < prevLen {
						t.Fatalf("Clip(%q, %v) shrank from %d to %d runes", s, w, prevLen, n)
					}
					prevLen = n

					// The result is the longest fitting prefix.
					runes := []rune(s)
					if n < len(runes) {
						if next := m.MeasureWidth(string(runes[:n+1]), Style{}); next <= w {
							t.Fatalf("Clip(%q, %v) = %q, but %q (%v) also fits",
								s, w, got.Text, string(runes[:n+1]), next)
						}
					}
				}
			}
		})
	}
}

func TestClipWithSuffix(t *testing.T) {
	m := New(WithProvider(&advanceProvider{advance: 10}))

	tests := []struct {
		name   string
		text   string
		width  float64
		suffix string
		want   ClipResult
	}{
		{"no suffix", "abcdef", 35, "", ClipResult{"abc", 30}},
		{"empty text", "", 35, "…", ClipResult{}},
		{"fits", "abc", 30, "…", ClipResult{"abc", 30}},
		{"clipped", "abcdefghij", 55, "…", ClipResult{"abcd…", 50}},
		{"exact", "abcdefghij", 50, "…", ClipResult{"abcd…", 50}},
		{"only suffix fits", "abcdef", 12, "…", ClipResult{"…", 10}},
		{"suffix too wide", "abcdef", 25, ".....", ClipResult{"ab", 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ClipWithSuffix(tt.text, Style{}, tt.width, tt.suffix); got != tt.want {
				t.Errorf("ClipWithSuffix = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClipWithSuffix_Properties(t *testing.T) {
	for name, m := range clipProviders() {
		t.Run(name, func(t *testing.T) {
			for _, s := range clipTexts {
				for _, suffix := range []string{"…", "...", "中"} {
					sw := m.MeasureWidth(suffix, Style{})
					for w := 0.0; w <= 120; w += 1.5 {
						got := m.ClipWithSuffix(s, Style{}, w, suffix)
						if got.Width > w {
							t.Fatalf("ClipWithSuffix(%q, %v, %q).Width = %v exceeds budget", s, w, suffix, got.Width)
						}
						if sw > w {
							if plain := m.Clip(s, Style{}, w); got != plain {
								t.Fatalf("ClipWithSuffix(%q, %v, %q) = %+v, want plain %+v", s, w, suffix, got, plain)
							}
						}
					}
				}
			}
		})
	}
}

func TestBuildVerticalList(t *testing.T) {
	got := BuildVerticalList("ab中文cd")
	want := []Run{
		{Text: "ab", Direction: RunMeasured},
		{Text: "中", Direction: RunFixed},
		{Text: "文", Direction: RunFixed},
		{Text: "cd", Direction: RunMeasured},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildVerticalList = %+v, want %+v", got, want)
	}
	if got := BuildVerticalList(""); len(got) != 0 {
		t.Errorf("BuildVerticalList(\"\") = %+v, want empty", got)
	}
	// Fullwidth forms are upright too.
	if got := BuildVerticalList("Ａ"); len(got) != 1 || got[0].Direction != RunFixed {
		t.Errorf("BuildVerticalList(fullwidth) = %+v", got)
	}
}

func TestClipVertical(t *testing.T) {
	m := New(WithProvider(&advanceProvider{advance: 10}))
	style := Style{FontSize: 10}
	runs := BuildVerticalList("ab中文cd")

	if got := m.MeasureVertical(runs, style); got != 60 {
		t.Errorf("MeasureVertical = %v, want 60", got)
	}

	tests := []struct {
		width     float64
		wantText  string
		wantWidth float64
	}{
		{100, "ab中文cd", 60},
		{55, "ab中文c", 50},
		{45, "ab中文", 40},
		{25, "ab", 20}, // single-character runs are never partially kept
		{15, "a", 10},
		{5, "", 0},
	}
	for _, tt := range tests {
		got := m.ClipVertical(runs, style, tt.width)
		if got.Text() != tt.wantText || got.Width != tt.wantWidth {
			t.Errorf("ClipVertical(%v) = %q/%v, want %q/%v", tt.width, got.Text(), got.Width, tt.wantText, tt.wantWidth)
		}
		if got.Width > tt.width {
			t.Errorf("ClipVertical(%v) width %v exceeds budget", tt.width, got.Width)
		}
	}

	if got := m.ClipVertical(nil, style, 10); len(got.Runs) != 0 || got.Width != 0 {
		t.Errorf("ClipVertical(nil) = %+v", got)
	}
}

func TestClipVerticalWithSuffix(t *testing.T) {
	m := New(WithProvider(&advanceProvider{advance: 10}))
	style := Style{FontSize: 10}
	runs := BuildVerticalList("ab中文cd")

	if got := m.ClipVerticalWithSuffix(runs, style, 100, "."); got.Text() != "ab中文cd" {
		t.Errorf("unclipped = %q", got.Text())
	}

	got := m.ClipVerticalWithSuffix(runs, style, 45, ".")
	if got.Text() != "ab中." || got.Width != 40 {
		t.Errorf("clipped = %q/%v, want ab中./40", got.Text(), got.Width)
	}
	last := got.Runs[len(got.Runs)-1]
	if last.Direction != RunMeasured || last.Width != 10 {
		t.Errorf("suffix run = %+v", last)
	}

	// Suffix wider than the budget degrades to plain clipping.
	plain := m.ClipVertical(runs, style, 15)
	if got := m.ClipVerticalWithSuffix(runs, style, 15, "..."); !reflect.DeepEqual(got, plain) {
		t.Errorf("wide suffix = %+v, want %+v", got, plain)
	}
}
