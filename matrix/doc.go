// Package matrix offers the dense adjacency-matrix form of the bfsviz graph
// model and the bulk edits the presentation shell performs on it.
//
// The matrix package provides:
//
//   - FromEdgeList / ToEdgeList converters between an EdgeList and an n×n
//     0/1 Matrix.
//   - RemoveEdge, the only validating mutation (ErrInvalidEdge,
//     ErrInvalidVertex).
//   - DisconnectAll / ConnectAll bulk operations. ConnectAll also sets the
//     diagonal; self-loop cells pass through unfiltered.
//
// Every operation is pure: inputs are never mutated, results are fresh
// allocations. Matrices are best for the small, human-built graphs this tool
// targets, where O(V²) memory is irrelevant.
package matrix
