// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// options.go - functional options for Build.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//   - No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes Build by mutating a builderConfig before the
// selected constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig carries the resolved knobs for every preset.
type builderConfig struct {
	gridSize  int
	treeDepth int
}

// newBuilderConfig returns defaults overridden by opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		gridSize:  DefaultGridSize,
		treeDepth: DefaultTreeDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithGridSize sets the side of the Grid preset. Panics on n < 0; n == 0
// surfaces later as ErrTooFewVertices from Grid.
func WithGridSize(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithGridSize(n<0)")
	}
	return func(c *builderConfig) {
		c.gridSize = n
	}
}

// WithTreeDepth sets the depth of the BinaryTree preset. Panics on d < 0.
func WithTreeDepth(d int) BuilderOption {
	if d < 0 {
		panic("builder: WithTreeDepth(d<0)")
	}
	return func(c *builderConfig) {
		c.treeDepth = d
	}
}
