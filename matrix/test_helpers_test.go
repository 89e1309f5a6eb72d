// SPDX-License-Identifier: MIT
// Package matrix_test contains deterministic fixtures shared by the tests.

package matrix_test

import (
	"math/rand"

	"github.com/katalvlaran/bfsviz/core"
)

// lectureEdges is the seven-node lecture graph.
var lectureEdges = core.EdgesFromPairs([][2]int{
	{0, 1}, {0, 2}, {1, 2}, {1, 4}, {2, 3}, {3, 5}, {4, 6},
})

// randomEdges returns m random non-loop edges over n nodes (duplicates allowed).
func randomEdges(rng *rand.Rand, n, m int) core.EdgeList {
	out := make(core.EdgeList, 0, m)
	for len(out) < m {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		out = append(out, core.NewEdge(a, b))
	}

	return out
}
