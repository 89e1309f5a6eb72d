// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_tree.go - implementation of BinaryTree(depth).
//
// Contract:
//   - depth ≥ MinTreeDepth (else ErrTooFewVertices).
//   - n = 2^(depth+1)-1 vertices, numbered level by level (heap order).
//   - The i-th vertex on level l (count = 2^l vertices) sits at
//     x = parts·(i+1) with parts = √(2·n·depth)/(count+1),
//     y = 1 + l + l·ln(depth).
//   - depth == 0 has no spread to work with; the lone root sits at (1,1).
//   - Parents on levels < depth emit (v,2v+1) then (v,2v+2).
//
// Complexity: O(2^depth) time and memory.

package builder

import (
	"math"

	"github.com/katalvlaran/bfsviz/core"
)

// BinaryTree returns the complete binary tree layout of the given depth.
func BinaryTree(depth int) (Layout, error) {
	if depth < MinTreeDepth {
		return Layout{}, builderErrorf(MethodBinaryTree, ErrTooFewVertices,
			"depth=%d (must be ≥ %d)", depth, MinTreeDepth)
	}
	if depth == 0 {
		return Layout{Nodes: []Point{{X: 1, Y: 1}}, Edges: core.EdgeList{}}, nil
	}

	n := 1<<(depth+1) - 1
	spread := math.Sqrt(float64(n * depth * 2))
	logDepth := math.Log(float64(depth))

	nodes := make([]Point, 0, n)
	edges := make(core.EdgeList, 0, n-1)
	for level := 0; level <= depth; level++ {
		count := 1 << level
		first := count - 1
		parts := spread / float64(count+1)
		y := 1 + float64(level) + float64(level)*logDepth
		for i := 0; i < count; i++ {
			nodes = append(nodes, Point{X: parts + parts*float64(i), Y: y})
		}
		if level < depth {
			for v := first; v < first+count; v++ {
				edges = append(edges, core.NewEdge(v, 2*v+1), core.NewEdge(v, 2*v+2))
			}
		}
	}

	return Layout{Nodes: nodes, Edges: edges}, nil
}
