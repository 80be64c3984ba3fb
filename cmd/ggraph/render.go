// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/render"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/theme"
)

type renderFlags struct {
	scene   string
	theme   string
	output  string
	backend string
	width   int
	height  int
}

func newRenderCmd(g *globalFlags) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to PNG or SVG",
		Long: "Render a scene file (YAML or TOML) or the built-in demo scene.\n" +
			"The backend is chosen from the output extension unless --backend is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, g, f)
		},
	}
	cmd.Flags().StringVar(&f.scene, "scene", "", "scene file; the demo scene when empty")
	cmd.Flags().StringVar(&f.theme, "theme", "", "theme file layered over the default theme")
	cmd.Flags().StringVarP(&f.output, "output", "o", "ggraph.png", "output file (.png or .svg)")
	cmd.Flags().StringVar(&f.backend, "backend", "", "surface backend: "+strings.Join(surface.List(), ", "))
	cmd.Flags().IntVar(&f.width, "width", 0, "canvas width; the scene width when 0")
	cmd.Flags().IntVar(&f.height, "height", 0, "canvas height; the scene height when 0")
	return cmd
}

func runRender(cmd *cobra.Command, g *globalFlags, f *renderFlags) error {
	fonts, err := g.loadFont()
	if err != nil {
		return err
	}
	sc, err := loadScene(f.scene)
	if err != nil {
		return err
	}

	var opts []render.Option
	if sc.Theme != nil {
		opts = append(opts, render.WithTheme(sc.Theme))
	}
	if f.theme != "" {
		t, err := theme.Load(f.theme)
		if err != nil {
			return err
		}
		opts = append(opts, render.WithTheme(t))
	}

	width, height := sc.Width, sc.Height
	if f.width > 0 {
		width = f.width
	}
	if f.height > 0 {
		height = f.height
	}
	o := surface.DefaultOptions(width, height)
	if bg, ok := surface.ParseColor(sc.Background); ok {
		o.Background = bg
	}

	backend := f.backend
	if backend == "" {
		backend = "image"
		if strings.EqualFold(filepath.Ext(f.output), ".svg") {
			backend = "svg"
		}
	}
	surf, err := surface.NewContextByName(backend, o)
	if err != nil {
		return err
	}
	if img, ok := surf.(*surface.ImageContext); ok && fonts != nil {
		img.SetFonts(fonts)
	}

	// Node failures are reported after the output is written.
	drawErr := render.NewService(opts...).Render(cmd.Context(), surf, sc.Nodes...)
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	if err := write(surf, f.output); err != nil {
		return err
	}
	ggraph.Logger().Info("rendered", "output", f.output, "backend", backend, "nodes", len(sc.Nodes))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d nodes)\n", f.output, width, height, len(sc.Nodes))
	return drawErr
}

func write(surf surface.Context, path string) error {
	switch c := surf.(type) {
	case *surface.ImageContext:
		return c.SavePNG(path)
	case *surface.SVGContext:
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := c.WriteTo(out); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	}
	return fmt.Errorf("backend %T has no file output", surf)
}
