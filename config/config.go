// SPDX-License-Identifier: MIT
// Package: bfsviz/config
//
// config.go - the Config tree, its defaults and validation.

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/render"
)

// Config is the full bfsviz configuration.
type Config struct {
	// Graph, when set, replaces the preset entirely.
	Graph    *Graph        `yaml:"graph,omitempty" toml:"graph,omitempty"`
	Preset   Preset        `yaml:"preset" toml:"preset"`
	Start    int           `yaml:"start" toml:"start" validate:"gte=0"`
	Goal     int           `yaml:"goal" toml:"goal" validate:"gte=0"`
	Interval Duration      `yaml:"interval" toml:"interval" validate:"gt=0"`
	Labels   []string      `yaml:"labels" toml:"labels"`
	Log      LogConfig     `yaml:"log" toml:"log"`
	Metrics  MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// Graph is an explicit layout: node coordinates and index pairs.
type Graph struct {
	Nodes [][2]float64 `yaml:"nodes" toml:"nodes" validate:"required,min=1"`
	Edges [][2]int     `yaml:"edges" toml:"edges"`
}

// Preset selects a builder preset and its parameters.
type Preset struct {
	Kind      string `yaml:"kind" toml:"kind" validate:"required,oneof=mit lecture grid binary-tree binarytree binary_tree tree"`
	GridSize  int    `yaml:"grid_size" toml:"grid_size" validate:"gte=0"`
	TreeDepth int    `yaml:"tree_depth" toml:"tree_depth" validate:"gte=0"`
}

// LogConfig configures the zap logger and its optional rotating file.
type LogConfig struct {
	Level      string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" toml:"format" validate:"oneof=console json"`
	File       string `yaml:"file" toml:"file"`
	MaxLogSize int    `yaml:"max_log_size" toml:"max_log_size" validate:"gte=0"` // megabytes
	MaxLogAge  int    `yaml:"max_log_age" toml:"max_log_age" validate:"gte=0"`   // days
}

// MetricsConfig configures the Prometheus text dump written after a run.
type MetricsConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Default returns the MIT lecture preset, start 0, goal 6, a 100ms
// interval and console logging at info.
func Default() *Config {
	labels := make([]string, len(render.DefaultLabels))
	copy(labels, render.DefaultLabels)

	return &Config{
		Preset: Preset{
			Kind:      builder.MIT.String(),
			GridSize:  builder.DefaultGridSize,
			TreeDepth: builder.DefaultTreeDepth,
		},
		Start:    builder.MITStart,
		Goal:     builder.MITGoal,
		Interval: Duration(100 * time.Millisecond),
		Labels:   labels,
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxLogSize: 10,
			MaxLogAge:  7,
		},
	}
}

var validate = validator.New()

// Validate checks struct tags. Failures wrap ErrInvalidConfig and the
// validator's own errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// BuilderOptions returns the preset parameters as builder options.
func (p Preset) BuilderOptions() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if p.GridSize >= 0 {
		opts = append(opts, builder.WithGridSize(p.GridSize))
	}
	if p.TreeDepth >= 0 {
		opts = append(opts, builder.WithTreeDepth(p.TreeDepth))
	}
	return opts
}

// Layout converts the explicit graph, rejecting edges with unknown endpoints.
func (g *Graph) Layout() (builder.Layout, error) {
	nodes := make([]builder.Point, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = builder.Point{X: n[0], Y: n[1]}
	}
	l := builder.Layout{Nodes: nodes, Edges: make(core.EdgeList, 0, len(g.Edges))}
	for _, e := range g.Edges {
		if e[0] < 0 || e[0] >= len(nodes) || e[1] < 0 || e[1] >= len(nodes) {
			return builder.Layout{}, fmt.Errorf("Layout: edge %v with %d nodes: %w", e, len(nodes), ErrBadGraph)
		}
		l.Edges = append(l.Edges, core.NewEdge(e[0], e[1]))
	}
	return l, nil
}

// Resolve returns the layout described by c: the explicit graph when set,
// otherwise the preset. Start and goal must name nodes of the result.
func (c *Config) Resolve() (builder.Layout, error) {
	var (
		l   builder.Layout
		err error
	)
	if c.Graph != nil {
		l, err = c.Graph.Layout()
	} else {
		var kind builder.Kind
		if kind, err = builder.ParseKind(c.Preset.Kind); err == nil {
			l, err = builder.Build(kind, c.Preset.BuilderOptions()...)
		}
	}
	if err != nil {
		return builder.Layout{}, fmt.Errorf("Resolve: %w", err)
	}

	n := l.NodeCount()
	if c.Start < 0 || c.Start >= n || c.Goal < 0 || c.Goal >= n {
		return builder.Layout{}, fmt.Errorf("Resolve: start %d, goal %d with %d nodes: %w",
			c.Start, c.Goal, n, ErrBadGraph)
	}
	return l, nil
}
