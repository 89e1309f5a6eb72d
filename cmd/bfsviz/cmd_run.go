// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/driver"
	"github.com/katalvlaran/bfsviz/metrics"
	"github.com/katalvlaran/bfsviz/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(f *rootFlags) *cobra.Command {
	var (
		interval    time.Duration
		maxSteps    int
		metricsPath string
		draw        bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the search until the goal, exhaustion or a step limit",
		Long: `Run steps the search on a fixed interval and prints one line per step:
the step number, its outcome and the queue after it. When the goal is
reached the path is printed last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.Interval.Std()
			}
			if !cmd.Flags().Changed("metrics") {
				metricsPath = a.cfg.Metrics.Path
			}
			if interval <= 0 {
				return fmt.Errorf("run: --interval must be positive, got %s", interval)
			}
			if maxSteps < 0 {
				return fmt.Errorf("run: --max-steps must be non-negative, got %d", maxSteps)
			}

			out := cmd.OutOrStdout()
			labels := a.cfg.Labels
			st := a.scene.Stepper()
			collector := metrics.NewCollector()

			opts := []driver.Option{
				driver.WithInterval(interval),
				driver.WithLogger(a.log),
				driver.WithOnStep(func(r bfs.StepResult) {
					collector.Observe(r, st)
					fmt.Fprintf(out, "%3d %-8s %s\n", r.Step, r.Outcome, render.FormatQueue(st.Queue(), labels))
				}),
			}
			if maxSteps > 0 {
				opts = append(opts, driver.WithMaxSteps(maxSteps))
			}

			a.log.Info("run started",
				zap.Int("nodes", a.scene.NodeCount()),
				zap.Int("start", a.scene.Start()),
				zap.Int("goal", a.scene.Goal()),
				zap.Duration("interval", interval),
			)
			began := time.Now()
			res, runErr := driver.New(st, opts...).Run(cmd.Context())
			collector.ObserveRun(res.Reason.String(), time.Since(began))

			printSummary(out, res, a, labels)
			if draw {
				c := render.Fit(72, 24, a.scene.Nodes())
				c.Styled = false
				c.Labels = labels
				fmt.Fprintln(out, c.Draw(a.scene))
			}

			if metricsPath != "" {
				if err := collector.Write(metricsPath); err != nil {
					return fmt.Errorf("run: write metrics: %w", err)
				}
				a.log.Info("metrics written", zap.String("path", metricsPath))
			}

			if runErr != nil && !errors.Is(runErr, cmd.Context().Err()) {
				return runErr
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", driver.DefaultInterval, "time between steps")
	cmd.Flags().IntVarP(&maxSteps, "max-steps", "n", 0, "stop after this many steps (0 means no limit)")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "write Prometheus text metrics to this file")
	cmd.Flags().BoolVar(&draw, "draw", false, "print the final graph as text")

	return cmd
}

func printSummary(w io.Writer, res driver.Result, a *app, labels []string) {
	fmt.Fprintf(w, "stopped: %s after %d steps\n", res.Reason, res.Steps)
	if p := a.scene.GoalPath(); p != nil {
		fmt.Fprintf(w, "path: %s\n", render.FormatPath(p, labels))
		return
	}
	if res.Reason == driver.StopExhausted {
		fmt.Fprintln(w, "path: unreachable")
		return
	}
	fmt.Fprintln(w, "path: -")
}
