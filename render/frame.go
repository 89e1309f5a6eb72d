// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/scene"
)

// Frame is everything the canvas draws, detached from any Scene.
type Frame struct {
	Nodes  []builder.Point
	Edges  core.EdgeList
	Start  int
	Goal   int
	Path   core.Path // head of the queue; its last node is "current"
	Legs   []int     // pending connect legs, in pick order
	Cursor *builder.Point
}

// FrameOf snapshots s.
func FrameOf(s *scene.Scene) Frame {
	var legs []int
	l1, l2 := s.Legs()
	for _, l := range []int{l1, l2} {
		if l != scene.NoNode {
			legs = append(legs, l)
		}
	}

	return Frame{
		Nodes: s.Nodes(),
		Edges: s.Edges(),
		Start: s.Start(),
		Goal:  s.Goal(),
		Path:  s.Stepper().CurrentPath(),
		Legs:  legs,
	}
}
