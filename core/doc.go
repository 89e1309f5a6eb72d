// Package core defines the primitive types shared by every bfsviz package:
// node indices, undirected edges, edge lists, paths, the visited set and the
// sparse connections (adjacency) list.
//
// What
//
//   - Edge:            an unordered pair of node indices {A, B}.
//   - EdgeList:        an ordered sequence of edges; duplicates are kept.
//   - Path:            a non-empty walk from the search start; its last
//     element is the path's "current" node.
//   - Visited:         node index → presence. Absence means unvisited.
//   - ConnectionsList: node index → ordered neighbor sequence.
//
// Why
//
//   - The traversal engine (package bfs) consumes a ConnectionsList; the dense
//     form lives in package matrix. Both are pure values derived from an
//     EdgeList and a node count, recomputed whenever either changes.
//
// Determinism
//
//	BuildConnectionsList preserves edge-list order: each edge (a,b) appends b
//	to a's neighbors and then a to b's. Nodes that never appear as an endpoint
//	have no entry; Neighbors reports nil for them, never an error.
//
// Complexity (V = node count, E = len(edges))
//
//   - BuildConnectionsList: O(E) time, O(E) memory.
//   - Path.Extend / Clone:  O(len(path)).
package core
