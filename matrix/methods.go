// SPDX-License-Identifier: MIT
// Package matrix - mutating operations, each returning a fresh matrix.

package matrix

const methodRemoveEdge = "RemoveEdge"

// RemoveEdge returns a copy of m with cells (i,j) and (j,i) cleared.
//
// Implementation:
//   - Stage 1: edge must be exactly [i, j]; else ErrInvalidEdge.
//   - Stage 2: m must be square and i, j must lie in [0, len(m));
//     else ErrInvalidVertex.
//   - Stage 3: clone m and clear both mirror cells.
//
// Errors leave m untouched; the input is never mutated in any case.
// Removing an absent edge is not an error.
func RemoveEdge(m Matrix, edge []int) (Matrix, error) {
	if err := validateEdge(edge); err != nil {
		return nil, matrixErrorf(methodRemoveEdge, err, "%v", edge)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(methodRemoveEdge, err, "edge %v", edge)
	}
	i, j := edge[0], edge[1]
	if err := validateVertex(i, len(m)); err != nil {
		return nil, matrixErrorf(methodRemoveEdge, err, "edge %v", edge)
	}
	if err := validateVertex(j, len(m)); err != nil {
		return nil, matrixErrorf(methodRemoveEdge, err, "edge %v", edge)
	}

	out := m.Clone()
	out[i][j] = Disconnected
	out[j][i] = Disconnected

	return out, nil
}

// DisconnectAll returns an all-zero matrix of m's size.
func DisconnectAll(m Matrix) Matrix {
	return filled(len(m), Disconnected)
}

// ConnectAll returns an all-one matrix of m's size. The diagonal is set too,
// so the exported edge list contains a self-loop per node.
func ConnectAll(m Matrix) Matrix {
	return filled(len(m), Connected)
}
