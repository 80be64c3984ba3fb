// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmeasure

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when a provider is given no font bytes.
var ErrEmptyFontData = errors.New("textmeasure: empty font data")

// FaceProvider measures text with x/image font faces. Families map to
// parsed OpenType fonts; the default family is used for unknown names.
// Faces are created per size and reused. Safe for concurrent use.
type FaceProvider struct {
	mu       sync.Mutex
	fallback *opentype.Font
	families map[string]*opentype.Font
	faces    map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float64
}

// NewFaceProvider creates a provider whose default family is parsed from
// TTF or OTF data.
func NewFaceProvider(data []byte) (*FaceProvider, error) {
	f, err := parseOpenType(data)
	if err != nil {
		return nil, err
	}
	return &FaceProvider{
		fallback: f,
		families: make(map[string]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
	}, nil
}

// AddFamily registers a font for a family name.
func (p *FaceProvider) AddFamily(name string, data []byte) error {
	f, err := parseOpenType(data)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.families[name] = f
	for k := range p.faces {
		if k.family == name {
			delete(p.faces, k)
		}
	}
	return nil
}

func parseOpenType(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font: %w", err)
	}
	return f, nil
}

// Measure implements Provider.
func (p *FaceProvider) Measure(text string, style Style) (Metrics, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	face, err := p.faceLocked(style)
	if err != nil {
		return Metrics{}, err
	}
	fm := face.Metrics()
	bounds, advance := font.BoundString(face, text)
	return Metrics{
		Width:         fixedToFloat(advance),
		ActualAscent:  -fixedToFloat(bounds.Min.Y),
		ActualDescent: fixedToFloat(bounds.Max.Y),
		FontAscent:    fixedToFloat(fm.Ascent),
		FontDescent:   fixedToFloat(fm.Descent),
	}, nil
}

func (p *FaceProvider) faceLocked(style Style) (font.Face, error) {
	family := style.FontFamily
	f, ok := p.families[family]
	if !ok {
		f, family = p.fallback, ""
	}
	key := faceKey{family: family, size: style.size()}
	if face, ok := p.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("textmeasure: new face: %w", err)
	}
	p.faces[key] = face
	return face, nil
}

// Close releases all cached faces.
func (p *FaceProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var errs []error
	for k, face := range p.faces {
		errs = append(errs, face.Close())
		delete(p.faces, k)
	}
	return errors.Join(errs...)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Draw renders text onto dst with its alphabetic baseline starting at
// (x, y) in dst pixel space.
func (p *FaceProvider) Draw(dst draw.Image, src image.Image, text string, style Style, x, y float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	face, err := p.faceLocked(style)
	if err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
	return nil
}
