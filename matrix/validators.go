// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the edge/vertex checks RemoveEdge performs.
//  - Return plain sentinel errors so call sites wrap them uniformly.

package matrix

import "fmt"

// validateEdge checks that edge names exactly two endpoints.
func validateEdge(edge []int) error {
	if len(edge) != 2 {
		return fmt.Errorf("edge has %d indices, want 2: %w", len(edge), ErrInvalidEdge)
	}

	return nil
}

// validateVertex checks 0 ≤ v < n.
func validateVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%d is not a vertex within the matrix: %w", v, ErrInvalidVertex)
	}

	return nil
}

// validateSquare checks every row has len(m) cells.
func validateSquare(m Matrix) error {
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(m), ErrInvalidVertex)
		}
	}

	return nil
}
