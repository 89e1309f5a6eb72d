// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	preset     string
	gridSize   int
	treeDepth  int
	start      int
	goal       int
	logLevel   string
	logFormat  string
	logFile    string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "bfsviz",
		Short: "Step through breadth-first search on small graphs",
		Long: `bfsviz runs a breadth-first search one expansion at a time over the MIT
lecture graph, a square grid, a binary tree or a graph from a config file.

Use "run" for a headless trace and "tui" for the interactive viewer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.StringVarP(&f.preset, "preset", "p", "", "graph preset: mit, grid or binary-tree")
	pf.IntVar(&f.gridSize, "grid-size", 0, "grid side for the grid preset")
	pf.IntVar(&f.treeDepth, "tree-depth", 0, "depth for the binary-tree preset")
	pf.IntVar(&f.start, "start", 0, "start node index")
	pf.IntVar(&f.goal, "goal", 0, "goal node index")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "log format: console or json")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this rotating file")

	cmd.AddCommand(
		newRunCmd(f),
		newTUICmd(f),
		newMatrixCmd(f),
		newExportCmd(f),
		newPresetsCmd(),
		newVersionCmd(),
	)

	return cmd
}
