// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ggraph renders scenes, measures text and picks points with the
// ggraph retained-mode core.
//
// Usage:
//
//	ggraph render [--scene scene.yaml] [--theme theme.toml] -o out.png
//	ggraph measure "some text" --font-size 14 --max-width 80
//	ggraph pick 120 45 [--scene scene.yaml]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/scene"
	"github.com/gogpu/ggraph/textmeasure"
)

type globalFlags struct {
	verbose bool
	font    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ggraph:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "ggraph",
		Short:         "Render, measure and pick with the ggraph scene core",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if g.verbose {
				ggraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&g.font, "font", "", "TTF/OTF font for live text measurement")

	root.AddCommand(newRenderCmd(g), newMeasureCmd(g), newPickCmd(g))
	return root
}

// loadFont installs a live text measurer when --font is set. The returned
// provider is nil without --font.
func (g *globalFlags) loadFont() (*textmeasure.FaceProvider, error) {
	if g.font == "" {
		return nil, nil
	}
	data, err := os.ReadFile(g.font)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	fp, err := textmeasure.NewFaceProvider(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	graphic.SetTextMeasurer(textmeasure.New(textmeasure.WithProvider(fp)))
	return fp, nil
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Demo(), nil
	}
	return scene.Load(path)
}
