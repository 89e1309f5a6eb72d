// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"go.uber.org/zap"
)

// Option configures New.
type Option func(*sceneConfig)

type sceneConfig struct {
	layout    builder.Layout
	start     int
	goal      int
	logger    *zap.Logger
	stepOpts  []bfs.Option
	hasLayout bool
}

// WithLayout sets the initial layout. The default is the MIT lecture graph.
func WithLayout(l builder.Layout) Option {
	return func(c *sceneConfig) {
		c.layout = l.Clone()
		c.hasLayout = true
	}
}

// WithStart sets the initial start node. Panics on a negative index.
func WithStart(i int) Option {
	if i < 0 {
		panic("scene: WithStart(i<0)")
	}
	return func(c *sceneConfig) { c.start = i }
}

// WithGoal sets the initial goal node. Panics on a negative index.
func WithGoal(i int) Option {
	if i < 0 {
		panic("scene: WithGoal(i<0)")
	}
	return func(c *sceneConfig) { c.goal = i }
}

// WithLogger sets the logger used for edit events and handed to the stepper.
func WithLogger(l *zap.Logger) Option {
	return func(c *sceneConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStepperOptions forwards hooks to the owned bfs.Stepper.
func WithStepperOptions(opts ...bfs.Option) Option {
	return func(c *sceneConfig) { c.stepOpts = append(c.stepOpts, opts...) }
}
