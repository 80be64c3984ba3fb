// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/textmeasure"
)

type measureFlags struct {
	fontSize float64
	family   string
	maxWidth float64
	ellipsis string
	vertical bool
}

func newMeasureCmd(g *globalFlags) *cobra.Command {
	f := &measureFlags{}
	cmd := &cobra.Command{
		Use:   "measure TEXT",
		Short: "Measure and clip text",
		Long: "Measure the width and height of TEXT. With --max-width the text is\n" +
			"clipped to fit, ending in the ellipsis. Without --font the width is\n" +
			"estimated from the font size.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := g.loadFont(); err != nil {
				return err
			}
			return runMeasure(cmd, f, args[0])
		},
	}
	cmd.Flags().Float64Var(&f.fontSize, "font-size", textmeasure.DefaultFontSize, "font size in pixels")
	cmd.Flags().StringVar(&f.family, "family", "", "font family")
	cmd.Flags().Float64Var(&f.maxWidth, "max-width", 0, "clip to this width when positive")
	cmd.Flags().StringVar(&f.ellipsis, "ellipsis", "…", "suffix of clipped text")
	cmd.Flags().BoolVar(&f.vertical, "vertical", false, "lay the text out top to bottom")
	return cmd
}

func runMeasure(cmd *cobra.Command, f *measureFlags, text string) error {
	m := graphic.TextMeasurer()
	style := textmeasure.Style{FontSize: f.fontSize, FontFamily: f.family}
	out := cmd.OutOrStdout()

	mode := "estimated"
	if m.Live() {
		mode = "live"
	}
	fmt.Fprintf(out, "mode:   %s\n", mode)

	if f.vertical {
		runs := textmeasure.BuildVerticalList(text)
		fmt.Fprintf(out, "runs:   %d\n", len(runs))
		fmt.Fprintf(out, "height: %.2f\n", m.MeasureVertical(runs, style))
		if f.maxWidth > 0 {
			res := m.ClipVerticalWithSuffix(runs, style, f.maxWidth, f.ellipsis)
			fmt.Fprintf(out, "clip:   %q (%.2f)\n", res.Text(), res.Width)
		}
		return nil
	}

	size := m.MeasureText(text, style)
	fmt.Fprintf(out, "width:  %.2f\n", size.Width)
	fmt.Fprintf(out, "height: %.2f\n", size.Height)
	fmt.Fprintf(out, "ink:    %.2f\n", m.MeasurePixelHeight(text, style))
	fmt.Fprintf(out, "box:    %.2f\n", m.MeasureBoundHeight(text, style))
	if f.maxWidth > 0 {
		res := m.ClipWithSuffix(text, style, f.maxWidth, f.ellipsis)
		fmt.Fprintf(out, "clip:   %q (%.2f)\n", res.Text, res.Width)
	}
	return nil
}
