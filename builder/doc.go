// Package builder provides deterministic preset layouts for the bfsviz scene:
// the MIT lecture graph, an N×N grid and a complete binary tree.
//
// What
//
//   - Every preset yields a Layout: node coordinates in abstract canvas units
//     plus the edge list over node indices. Node i of Layout.Nodes is vertex i.
//   - Build(kind, opts...) is the single orchestrator used by the CLI, the TUI
//     and the config loader; MITLecture, Grid and BinaryTree are the raw
//     constructors behind it.
//
// Determinism
//
//	Same inputs ⇒ identical node order and identical edge order. Grid emits
//	vertices x-major and, per vertex, the (x+1) edge before the (y+1) edge.
//	BinaryTree emits vertices level by level and, per parent v, (v,2v+1)
//	before (v,2v+2).
//
// Errors
//
//   - ErrTooFewVertices → a size/depth below the constructor minimum.
//   - ErrUnknownKind    → ParseKind or Build received an unsupported preset.
//
// Option constructors panic on meaningless values (negative sizes); the
// constructors themselves never panic.
package builder
