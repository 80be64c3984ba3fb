// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/picker"
	"github.com/gogpu/ggraph/render"
)

type pickFlags struct {
	scene string
	all   bool
}

func newPickCmd(g *globalFlags) *cobra.Command {
	f := &pickFlags{}
	cmd := &cobra.Command{
		Use:   "pick X Y",
		Short: "Report the node under a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			if _, err := g.loadFont(); err != nil {
				return err
			}
			return runPick(cmd, f, ggraph.Pt(x, y))
		},
	}
	cmd.Flags().StringVar(&f.scene, "scene", "", "scene file; the demo scene when empty")
	cmd.Flags().BoolVar(&f.all, "all", false, "list every node under the point, topmost first")
	return cmd
}

func runPick(cmd *cobra.Command, f *pickFlags, pt ggraph.Point) error {
	sc, err := loadScene(f.scene)
	if err != nil {
		return err
	}

	var opts []render.Option
	if sc.Theme != nil {
		opts = append(opts, render.WithTheme(sc.Theme))
	}
	ps := picker.NewService(picker.WithRenderService(render.NewService(opts...)))
	ps.Add(sc.Nodes...)

	out := cmd.OutOrStdout()
	if f.all {
		hits := ps.PickAll(pt)
		for _, n := range hits {
			fmt.Fprintf(out, "%s\t%s\n", n.Type(), sc.ID(n))
		}
		if len(hits) == 0 {
			fmt.Fprintln(out, "no hit")
		}
		return nil
	}

	n, ok := ps.Pick(pt)
	if !ok {
		fmt.Fprintln(out, "no hit")
		return nil
	}
	fmt.Fprintf(out, "%s\t%s\n", n.Type(), sc.ID(n))
	return nil
}
