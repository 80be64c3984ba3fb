// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/textmeasure"
)

// ImageContext rasterizes into an *image.RGBA with draw2d.
//
// Solid paints go straight through draw2d. Gradients are rasterized as a
// coverage mask and composited with the gradient as source. Shadows are
// painted as an offset copy in the shadow color; blur is not applied.
type ImageContext struct {
	base
	img   *image.RGBA
	gc    *draw2dimg.GraphicContext
	fonts *textmeasure.FaceProvider
}

// NewImageContext creates a transparent raster context.
func NewImageContext(width, height int) *ImageContext {
	return NewImageContextFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageContextFor draws into an existing image.
func NewImageContextFor(img *image.RGBA) *ImageContext {
	b := img.Bounds()
	return &ImageContext{
		base: newBase(b.Dx(), b.Dy()),
		img:  img,
		gc:   draw2dimg.NewGraphicContext(img),
	}
}

// Image returns the backing image.
func (c *ImageContext) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with col, ignoring state.
func (c *ImageContext) Clear(col color.NRGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SetFonts sets the provider used for text. Without one, Go Regular is
// loaded on first use.
func (c *ImageContext) SetFonts(p *textmeasure.FaceProvider) {
	c.fonts = p
}

// SetShadow implements ShadowContext.
func (c *ImageContext) SetShadow(s Shadow) {
	c.setShadow(s)
}

// Fill implements Context.
func (c *ImageContext) Fill() {
	c.paint(c.st.fill, false)
}

// Stroke implements Context.
func (c *ImageContext) Stroke() {
	c.paint(c.st.stroke, true)
}

func (c *ImageContext) paint(p Paint, stroke bool) {
	if c.path.IsEmpty() || c.st.alpha <= 0 {
		return
	}
	if sh := c.st.shadow; !sh.IsZero() {
		if sh.Blur > 0 {
			ggraph.Logger().Debug("surface: shadow blur not supported by image context", "blur", sh.Blur)
		}
		shadow := toDraw2DPath(&c.path, sh.OffsetX, sh.OffsetY)
		c.rasterize(c.gc, shadow, WithAlpha(sh.Color, c.st.alpha), stroke)
	}

	path := toDraw2DPath(&c.path, 0, 0)
	if p.Gradient == nil {
		c.rasterize(c.gc, path, WithAlpha(p.Color, c.st.alpha), stroke)
		return
	}

	mask := image.NewRGBA(c.img.Bounds())
	c.rasterize(draw2dimg.NewGraphicContext(mask), path, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, stroke)
	src := &gradientImage{
		g:      p.Gradient,
		inv:    c.st.transform.Invert(),
		alpha:  c.st.alpha,
		bounds: c.img.Bounds(),
	}
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *ImageContext) rasterize(gc *draw2dimg.GraphicContext, path *draw2d.Path, col color.NRGBA, stroke bool) {
	if stroke {
		gc.SetStrokeColor(col)
		gc.SetLineWidth(c.deviceLineWidth())
		gc.SetLineCap(draw2dCap(c.st.lineCap))
		gc.SetLineJoin(draw2dJoin(c.st.lineJoin))
		gc.Stroke(path)
		return
	}
	gc.SetFillColor(col)
	gc.SetFillRule(draw2d.FillRuleWinding)
	gc.Fill(path)
}

// toDraw2DPath converts a device-space path, shifted by (dx, dy).
func toDraw2DPath(p *Path, dx, dy float64) *draw2d.Path {
	out := new(draw2d.Path)
	p.Walk(func(v Verb, pts []ggraph.Point) {
		switch v {
		case VerbMoveTo:
			out.MoveTo(pts[0].X+dx, pts[0].Y+dy)
		case VerbLineTo:
			out.LineTo(pts[0].X+dx, pts[0].Y+dy)
		case VerbQuadTo:
			out.QuadCurveTo(pts[0].X+dx, pts[0].Y+dy, pts[1].X+dx, pts[1].Y+dy)
		case VerbCubicTo:
			out.CubicCurveTo(pts[0].X+dx, pts[0].Y+dy, pts[1].X+dx, pts[1].Y+dy, pts[2].X+dx, pts[2].Y+dy)
		case VerbClose:
			out.Close()
		}
	})
	return out
}

func draw2dCap(c LineCap) draw2d.LineCap {
	switch c {
	case LineCapRound:
		return draw2d.RoundCap
	case LineCapSquare:
		return draw2d.SquareCap
	}
	return draw2d.ButtCap
}

func draw2dJoin(j LineJoin) draw2d.LineJoin {
	switch j {
	case LineJoinRound:
		return draw2d.RoundJoin
	case LineJoinBevel:
		return draw2d.BevelJoin
	}
	return draw2d.MiterJoin
}

// gradientImage evaluates a user-space gradient at device pixels.
type gradientImage struct {
	g      *Gradient
	inv    ggraph.Matrix
	alpha  float64
	bounds image.Rectangle
}

func (gi *gradientImage) ColorModel() color.Model { return color.NRGBAModel }
func (gi *gradientImage) Bounds() image.Rectangle { return gi.bounds }

func (gi *gradientImage) At(x, y int) color.Color {
	p := gi.inv.TransformPoint(ggraph.Pt(float64(x)+0.5, float64(y)+0.5))
	return WithAlpha(gi.g.ColorAt(gi.g.Param(p.X, p.Y)), gi.alpha)
}

func (c *ImageContext) faceProvider() *textmeasure.FaceProvider {
	if c.fonts == nil {
		p, err := textmeasure.NewFaceProvider(goregular.TTF)
		if err != nil {
			ggraph.Logger().Warn("surface: default font unavailable", "err", err)
			return nil
		}
		c.fonts = p
	}
	return c.fonts
}

// FillText implements TextContext. Only the translation of the current
// transform applies to glyphs.
func (c *ImageContext) FillText(text string, x, y float64) {
	fonts := c.faceProvider()
	if fonts == nil || text == "" {
		return
	}
	p := c.tf(x, y)
	src := image.NewUniform(WithAlpha(c.st.fill.Color, c.st.alpha))
	if err := fonts.Draw(c.img, src, text, c.st.font, p.X, p.Y); err != nil {
		ggraph.Logger().Debug("surface: fill text failed", "err", err)
	}
}

// MeasureText implements TextContext.
func (c *ImageContext) MeasureText(text string) textmeasure.Metrics {
	fonts := c.faceProvider()
	if fonts == nil {
		size := textmeasure.Estimate(text, c.st.font.FontSize)
		return textmeasure.Metrics{Width: size.Width, FontAscent: size.Height}
	}
	m, err := fonts.Measure(text, c.st.font)
	if err != nil {
		ggraph.Logger().Debug("surface: measure text failed", "err", err)
	}
	return m
}

// SavePNG writes the image to a PNG file.
func (c *ImageContext) SavePNG(path string) error {
	return draw2dimg.SaveToPngFile(path, c.img)
}

// EncodePNG writes the image as PNG to w.
func (c *ImageContext) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

var (
	_ ShadowContext = (*ImageContext)(nil)
	_ TextContext   = (*ImageContext)(nil)
)
