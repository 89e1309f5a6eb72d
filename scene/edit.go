// SPDX-License-Identifier: MIT
// Package: bfsviz/scene
//
// edit.go - mode-gated interaction handlers.

package scene

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
	"go.uber.org/zap"
)

func (s *Scene) clearLegs() { s.leg1, s.leg2 = NoNode, NoNode }

func (s *Scene) checkNode(method string, i int) error {
	if i < 0 || i >= len(s.nodes) {
		return fmt.Errorf("%s: node %d of %d: %w", method, i, len(s.nodes), ErrUnknownNode)
	}
	return nil
}

func (s *Scene) wrongMode(method string) error {
	return fmt.Errorf("%s: mode %v: %w", method, s.mode, ErrWrongMode)
}

// SetMode switches the interaction mode and drops any pending connect legs.
func (s *Scene) SetMode(m Mode) {
	s.clearLegs()
	if m != s.mode {
		s.log.Debug("mode changed", zap.Stringer("from", s.mode), zap.Stringer("to", m))
	}
	s.mode = m
}

// AddNode appends a node at p and returns its index. ModeAdd only.
func (s *Scene) AddNode(p builder.Point) (int, error) {
	if s.mode != ModeAdd {
		return NoNode, s.wrongMode("AddNode")
	}
	s.nodes = append(s.nodes, p)
	s.derive()

	return len(s.nodes) - 1, nil
}

// MoveNode places node i at p. ModeMove only.
func (s *Scene) MoveNode(i int, p builder.Point) error {
	if s.mode != ModeMove {
		return s.wrongMode("MoveNode")
	}
	if err := s.checkNode("MoveNode", i); err != nil {
		return err
	}
	s.nodes[i] = p

	return nil
}

// ClickNode applies a node click in the current mode.
//   - ModeSetStart: node becomes the start; traversal resets.
//   - ModeSetEnd:   node becomes the goal; traversal resets.
//   - ModeConnect:  first click picks leg 1; a click with both legs set
//     commits edge (leg1, leg2) and clears the legs.
func (s *Scene) ClickNode(i int) error {
	if err := s.checkNode("ClickNode", i); err != nil {
		return err
	}
	switch s.mode {
	case ModeSetStart:
		return s.SetStart(i)
	case ModeSetEnd:
		return s.SetGoal(i)
	case ModeConnect:
		if s.leg1 == NoNode {
			s.leg1 = i
			return nil
		}
		if s.leg2 == NoNode {
			return nil
		}
		e := core.NewEdge(s.leg1, s.leg2)
		s.edges = append(s.edges, e)
		s.clearLegs()
		s.derive()
		s.log.Debug("edge added", zap.Stringer("edge", e))
	default:
		return s.wrongMode("ClickNode")
	}

	return nil
}

// HoverNode proposes node i as leg 2 while connecting. The proposal is
// ignored when no leg 1 is set, when i is leg 1, or when the edge exists.
func (s *Scene) HoverNode(i int) error {
	if err := s.checkNode("HoverNode", i); err != nil {
		return err
	}
	if s.mode != ModeConnect || s.leg1 == NoNode {
		return nil
	}
	if i == s.leg1 || s.adj.Has(s.leg1, i) {
		return nil
	}
	s.leg2 = i

	return nil
}

// LeaveNode withdraws a proposed leg 2.
func (s *Scene) LeaveNode() {
	if s.mode != ModeConnect || s.leg1 == NoNode {
		return
	}
	s.leg2 = NoNode
}

// RemoveEdge deletes e through the adjacency matrix and rebuilds the edge
// list from it. The rebuilt list is deduplicated and row-major ordered.
func (s *Scene) RemoveEdge(e core.Edge) error {
	m, err := matrix.RemoveEdge(s.adj, e.Ints())
	if err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}
	s.edges = matrix.ToEdgeList(m)
	s.derive()
	s.log.Debug("edge removed", zap.Stringer("edge", e))

	return nil
}

// ConnectAll joins every ordered pair of nodes, loops included.
func (s *Scene) ConnectAll() {
	s.edges = matrix.ToEdgeList(matrix.ConnectAll(s.adj))
	s.derive()
}

// DisconnectAll removes every edge.
func (s *Scene) DisconnectAll() {
	s.edges = matrix.ToEdgeList(matrix.DisconnectAll(s.adj))
	s.derive()
}

// Next performs one traversal step.
func (s *Scene) Next() bfs.StepResult { return s.stepper.Step() }

// Reset returns to ModeMove, clears legs and restarts the traversal at start.
func (s *Scene) Reset() {
	s.SetMode(ModeMove)
	s.stepper.Reset(s.start)
}

// SetStart moves the start to node i and resets the traversal.
func (s *Scene) SetStart(i int) error {
	if err := s.checkNode("SetStart", i); err != nil {
		return err
	}
	s.start = i
	s.stepper.Reset(i)
	return nil
}

// SetGoal moves the goal to node i and resets the traversal.
func (s *Scene) SetGoal(i int) error {
	if err := s.checkNode("SetGoal", i); err != nil {
		return err
	}
	s.goal = i
	s.stepper.SetGoal(i)
	return nil
}
