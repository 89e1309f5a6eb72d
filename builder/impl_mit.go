// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_mit.go - the fixed seven-node lecture graph.

package builder

import "github.com/katalvlaran/bfsviz/core"

const (
	// MITStart and MITGoal are the lecture's start and goal vertices.
	MITStart = 0
	MITGoal  = 6
)

var (
	mitNodes = []Point{{1, 1}, {4, 1}, {4, 5}, {4, 9}, {7, 1}, {10, 9}, {10, 5}}
	mitEdges = [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 4}, {2, 3}, {3, 5}, {4, 6}}
)

// MITLecture returns a fresh copy of the lecture graph: S A B C D E G.
func MITLecture() Layout {
	nodes := make([]Point, len(mitNodes))
	copy(nodes, mitNodes)

	return Layout{Nodes: nodes, Edges: core.EdgesFromPairs(mitEdges)}
}
