// SPDX-License-Identifier: MIT
// Package: bfsviz/scene
//
// scene.go - Scene state, construction and derived graph models.

package scene

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
	"go.uber.org/zap"
)

// NoNode marks an unset connect leg.
const NoNode = -1

// Scene is the presentation shell's state.
type Scene struct {
	nodes []builder.Point
	edges core.EdgeList
	start int
	goal  int
	mode  Mode
	leg1  int
	leg2  int

	adj   matrix.Matrix
	conns core.ConnectionsList

	stepper *bfs.Stepper
	log     *zap.Logger
}

// New builds a Scene in ModeMove. Without options it shows the MIT lecture
// graph with start 0 and goal 6.
func New(opts ...Option) (*Scene, error) {
	cfg := sceneConfig{
		start:  builder.MITStart,
		goal:   builder.MITGoal,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasLayout {
		cfg.layout = builder.MITLecture()
	}
	if err := checkLayout(cfg.layout); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	s := &Scene{
		nodes: cfg.layout.Nodes,
		edges: cfg.layout.Edges,
		start: cfg.start,
		goal:  cfg.goal,
		mode:  ModeMove,
		leg1:  NoNode,
		leg2:  NoNode,
		log:   cfg.logger,
	}
	s.derive()
	stepOpts := append([]bfs.Option{bfs.WithLogger(cfg.logger)}, cfg.stepOpts...)
	s.stepper = bfs.New(s.conns, s.start, s.goal, stepOpts...)

	return s, nil
}

// checkLayout rejects edges naming nodes outside the layout.
func checkLayout(l builder.Layout) error {
	n := len(l.Nodes)
	for _, e := range l.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("edge %v with %d nodes: %w", e, n, ErrUnknownNode)
		}
	}
	return nil
}

// derive recomputes the adjacency matrix and connections list from the
// current nodes and edges, and hands the new list to the stepper.
func (s *Scene) derive() {
	if s.edges == nil {
		s.edges = core.EdgeList{}
	}
	s.adj = matrix.FromEdgeList(len(s.nodes), s.edges)
	s.conns = core.BuildConnectionsList(len(s.nodes), s.edges)
	if s.stepper != nil {
		s.stepper.SetGraph(s.conns)
	}
}

// LoadLayout replaces nodes and edges, clears pending legs and resets the
// traversal from the current start.
func (s *Scene) LoadLayout(l builder.Layout) error {
	if err := checkLayout(l); err != nil {
		return fmt.Errorf("LoadLayout: %w", err)
	}
	l = l.Clone()
	s.nodes, s.edges = l.Nodes, l.Edges
	s.clearLegs()
	s.derive()
	s.stepper.Reset(s.start)
	s.log.Debug("layout loaded", zap.Int("nodes", len(s.nodes)), zap.Int("edges", len(s.edges)))

	return nil
}

// LoadPreset builds the given preset and loads it.
func (s *Scene) LoadPreset(kind builder.Kind, opts ...builder.BuilderOption) error {
	l, err := builder.Build(kind, opts...)
	if err != nil {
		return fmt.Errorf("LoadPreset: %w", err)
	}
	return s.LoadLayout(l)
}

// Matrix returns a copy of the derived adjacency matrix.
func (s *Scene) Matrix() matrix.Matrix { return s.adj.Clone() }

// Connections returns a copy of the derived connections list.
func (s *Scene) Connections() core.ConnectionsList { return s.conns.Clone() }

// Nodes returns a copy of the node positions.
func (s *Scene) Nodes() []builder.Point {
	out := make([]builder.Point, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// NodeCount returns the number of nodes.
func (s *Scene) NodeCount() int { return len(s.nodes) }

// Edges returns a copy of the edge list.
func (s *Scene) Edges() core.EdgeList { return s.edges.Clone() }

// Layout returns the current nodes and edges as a Layout.
func (s *Scene) Layout() builder.Layout {
	return builder.Layout{Nodes: s.Nodes(), Edges: s.Edges()}
}

// Start returns the start node.
func (s *Scene) Start() int { return s.start }

// Goal returns the goal node.
func (s *Scene) Goal() int { return s.goal }

// Mode returns the interaction mode.
func (s *Scene) Mode() Mode { return s.mode }

// Legs returns the pending connect legs; NoNode marks an unset leg.
func (s *Scene) Legs() (first, second int) { return s.leg1, s.leg2 }

// Stepper returns the owned stepper.
func (s *Scene) Stepper() *bfs.Stepper { return s.stepper }

// GoalPath returns the goal path once a step has reached the goal, else nil.
func (s *Scene) GoalPath() core.Path {
	if !s.stepper.Reached() {
		return nil
	}
	return s.stepper.CurrentPath()
}
