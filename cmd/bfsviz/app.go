// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/logging"
	"github.com/katalvlaran/bfsviz/scene"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state every subcommand starts from.
type app struct {
	cfg     *config.Config
	scene   *scene.Scene
	log     *zap.Logger
	session string
	close   func() error
}

// loadConfig reads the config file when one is given and applies the flags
// the user set on top of it.
func loadConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset.Kind = f.preset
		cfg.Graph = nil
	}
	if flags.Changed("grid-size") {
		cfg.Preset.GridSize = f.gridSize
	}
	if flags.Changed("tree-depth") {
		cfg.Preset.TreeDepth = f.treeDepth
	}
	if flags.Changed("start") {
		cfg.Start = f.start
	}
	if flags.Changed("goal") {
		cfg.Goal = f.goal
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp loads the config, builds the logger and the scene.
// When quiet is set and no log file is configured, logging is discarded.
func newApp(cmd *cobra.Command, f *rootFlags, quiet bool) (*app, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, session: logging.NewSession()}
	if quiet && cfg.Log.File == "" {
		a.log, a.close = zap.NewNop(), func() error { return nil }
	} else if a.log, a.close, err = logging.New(cfg.Log, a.session); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	if a.scene, err = newScene(cfg, a.log); err != nil {
		_ = a.close()
		return nil, err
	}
	return a, nil
}

func newScene(cfg *config.Config, log *zap.Logger) (*scene.Scene, error) {
	l, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return scene.New(
		scene.WithLayout(l),
		scene.WithStart(cfg.Start),
		scene.WithGoal(cfg.Goal),
		scene.WithLogger(log),
	)
}
