// SPDX-License-Identifier: MIT

/*
AdjacencyMatrix conversions

Description:
  A dense n×n 0/1 grid where m[i][j] == 1 marks an undirected edge between
  nodes i and j. Built from an EdgeList, exported back to one.

Time complexity:
  - FromEdgeList: O(n² + E)
  - ToEdgeList:   O(n²)

Memory:
  - O(n²)

Algorithm ToEdgeList:
  1. Deep-copy the input into a working matrix W.
  2. Scan W row-major, i outer, j inner, full range.
  3. On W[i][j] == 1 emit (i,j) and clear W[j][i] so the mirror is skipped.
*/

package matrix

import "github.com/katalvlaran/bfsviz/core"

// FromEdgeList builds the symmetric adjacency matrix of an undirected graph.
//
// Precondition: every endpoint lies in [0, nodeCount). Violations are
// programmer errors and panic with a runtime index error; callers validate
// user input before converting.
//
// Duplicate edges set the same cell twice; the cell stays Connected, never 2.
func FromEdgeList(nodeCount int, edges core.EdgeList) Matrix {
	m := New(nodeCount)
	for _, e := range edges {
		m[e.A][e.B] = Connected
		m[e.B][e.A] = Connected
	}

	return m
}

// ToEdgeList emits one representative per undirected edge of m.
// For symmetric input the representative is (i,j) with i ≤ j. For asymmetric
// input the output is deterministic but otherwise undefined. m is not mutated.
func ToEdgeList(m Matrix) core.EdgeList {
	work := m.Clone()
	edges := core.EdgeList{}
	for i := 0; i < len(work); i++ {
		for j := 0; j < len(work[i]); j++ {
			if work[i][j] != Connected {
				continue
			}
			edges = append(edges, core.Edge{A: i, B: j})
			if j < len(work) && i < len(work[j]) {
				work[j][i] = Disconnected
			}
		}
	}

	return edges
}
