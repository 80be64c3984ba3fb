// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"image/color"
	"math"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/surface"
)

// Demo returns a scene that uses every node type and the built-in
// contributions.
func Demo() *Scene {
	grad := &surface.Gradient{
		Kind: surface.GradientLinear,
		X0:   -40, X1: 40,
		Stops: []surface.GradientStop{
			{Offset: 0, Color: hex("#4f86f7")},
			{Offset: 1, Color: hex("#9b59b6")},
		},
	}

	return NewBuilder().
		Size(DefaultWidth, DefaultHeight).
		Background("#ffffff").
		Rect(ggraph.Attrs{
			"x": 20, "y": 20, "width": 160, "height": 100, "cornerRadius": 12,
			"fill": "#f4f4f4", "stroke": "#999999", "lineWidth": 1,
			"texture": "circle", "textureColor": "rgba(0,0,0,0.08)",
		}).ID("panel").
		Circle(ggraph.Attrs{
			"x": 100, "y": 70, "radius": 40, "fill": grad,
			"shadowBlur": 6, "shadowOffsetY": 3, "shadowColor": "rgba(0,0,0,0.3)",
			"outerBorder": ggraph.Attrs{"distance": 4, "stroke": "#4f86f7", "lineWidth": 2},
		}).ID("ball").
		Arc(ggraph.Attrs{
			"x": 290, "y": 70, "innerRadius": 25, "outerRadius": 45,
			"startAngle": -math.Pi / 2, "endAngle": math.Pi,
			"fill": "#2ecc71", "stroke": "#ffffff", "lineWidth": 2,
		}).ID("gauge").
		Line(ggraph.Attrs{
			"x": 20, "y": 160,
			"points":    [][2]float64{{0, 80}, {60, 20}, {120, 60}, {180, 0}, {240, 40}, {360, 10}},
			"curveType": "monotoneX", "strokeColor": "#e74c3c", "lineWidth": 3,
		}).ID("trend").
		Glyph(ggraph.Attrs{"x": 60, "y": 260, "fill": "#34495e"}, func(b *Builder) {
			b.Rect(ggraph.Attrs{"dx": -8, "dy": -8, "width": 16, "height": 16}).
				Text(ggraph.Attrs{"dx": 14, "text": "legend entry", "fontSize": 14, "textBaseline": "middle"})
		}).ID("legend").
		Text(ggraph.Attrs{
			"x": 380, "y": 290, "text": "ggraph retained-mode demo", "fontSize": 12,
			"textAlign": "right", "maxLineWidth": 150, "fill": "#7f8c8d",
		}).ID("caption").
		Build()
}

func hex(s string) color.NRGBA {
	c, _ := surface.ParseColor(s)
	return c
}
