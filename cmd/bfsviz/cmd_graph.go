// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/matrix"
	"github.com/katalvlaran/bfsviz/render"
	"github.com/spf13/cobra"
)

func newMatrixCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency matrix and connections list of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			out := cmd.OutOrStdout()
			m := a.scene.Matrix()
			fmt.Fprintln(out, m.String())

			edges := matrix.ToEdgeList(m)
			pairs := make([]string, len(edges))
			for i, e := range edges {
				pairs[i] = e.String()
			}
			fmt.Fprintf(out, "edges: %s\n\n", strings.Join(pairs, " "))

			conns := a.scene.Connections()
			for _, n := range conns.Nodes() {
				ns := conns.Neighbors(n)
				names := make([]string, len(ns))
				for i, m := range ns {
					names[i] = render.Label(m, a.cfg.Labels)
				}
				fmt.Fprintf(out, "%s: %s\n", render.Label(n, a.cfg.Labels), strings.Join(names, " "))
			}
			return nil
		},
	}
}

func newExportCmd(f *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the resolved graph as an explicit config",
		Long: `Export resolves the preset or config into node coordinates and edge pairs
and writes a config that reproduces it. Without a file the config is
printed in --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			out := *a.cfg
			out.Graph = graphOf(a.scene.Layout())

			if len(args) == 1 {
				return config.Save(&out, args[0])
			}

			var fm config.Format
			switch strings.ToLower(format) {
			case "yaml", "yml":
				fm = config.YAML
			case "toml":
				fm = config.TOML
			default:
				return fmt.Errorf("export: %q: %w", format, config.ErrUnknownFormat)
			}
			data, err := config.Marshal(&out, fm)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format when printing: yaml or toml")

	return cmd
}

func graphOf(l builder.Layout) *config.Graph {
	g := &config.Graph{
		Nodes: make([][2]float64, len(l.Nodes)),
		Edges: make([][2]int, len(l.Edges)),
	}
	for i, p := range l.Nodes {
		g.Nodes[i] = [2]float64{p.X, p.Y}
	}
	for i, e := range l.Edges {
		g.Edges[i] = [2]int{e.A, e.B}
	}
	return g
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, k := range builder.Kinds() {
				l, err := builder.Build(k)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %4d nodes %4d edges\n", k, l.NodeCount(), len(l.Edges))
			}
			fmt.Fprintf(out, "grid sizes:  %v\n", builder.GridSizes())
			fmt.Fprintf(out, "tree depths: %v\n", builder.TreeDepths())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bfsviz %s\n", version)
		},
	}
}
