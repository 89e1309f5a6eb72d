// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTUICmd(f *rootFlags) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive viewer",
		Long: `TUI opens a full-screen viewer. Press ? inside it for the key list.

With --watch, edits to the --config file are applied while the viewer runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && f.configPath == "" {
				return fmt.Errorf("tui: --watch needs --config")
			}
			// the terminal belongs to the viewer, so logs only go to a file
			a, err := newApp(cmd, f, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			opts := []tui.Option{
				tui.WithInterval(a.cfg.Interval.Std()),
				tui.WithLabels(a.cfg.Labels),
				tui.WithLogger(a.log),
			}
			if a.cfg.Graph == nil {
				if kind, err := builder.ParseKind(a.cfg.Preset.Kind); err == nil {
					opts = append(opts, tui.WithPreset(kind, a.cfg.Preset.GridSize, a.cfg.Preset.TreeDepth))
				}
			}

			p := tea.NewProgram(tui.New(a.scene, opts...),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			if watch {
				w, err := tui.Watch(cmd.Context(), f.configPath, p.Send, a.log)
				if err != nil {
					return err
				}
				defer w.Stop()
				a.log.Info("watching config", zap.String("path", f.configPath))
			}

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the graph when the config file changes")

	return cmd
}
