// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_grid.go - implementation of Grid(size).
//
// Contract:
//   - size ≥ MinGridSize (else ErrTooFewVertices).
//   - Vertex (x,y) has index size*x+y and sits at ((x+1)·1.5, (y+1)·1.5).
//   - For each vertex in (x asc, y asc) order emit (x+1,y) then (x,y+1).
//
// Complexity: O(size²) time and memory.

package builder

import "github.com/katalvlaran/bfsviz/core"

// Grid returns the size×size orthogonal grid layout.
func Grid(size int) (Layout, error) {
	if size < MinGridSize {
		return Layout{}, builderErrorf(MethodGrid, ErrTooFewVertices,
			"size=%d (must be ≥ %d)", size, MinGridSize)
	}

	index := func(x, y int) int { return size*x + y }

	nodes := make([]Point, 0, size*size)
	edges := make(core.EdgeList, 0, 2*size*(size-1))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			nodes = append(nodes, Point{
				X: float64(x+1) * GridSpacing,
				Y: float64(y+1) * GridSpacing,
			})
			if x+1 < size {
				edges = append(edges, core.NewEdge(index(x, y), index(x+1, y)))
			}
			if y+1 < size {
				edges = append(edges, core.NewEdge(index(x, y), index(x, y+1)))
			}
		}
	}

	return Layout{Nodes: nodes, Edges: edges}, nil
}
