// SPDX-License-Identifier: MIT
// Package core - sparse connections list built from an edge list.

package core

import "sort"

// ConnectionsList maps a node index to its ordered neighbor sequence.
// A missing key means "no neighbors"; it is never an error.
type ConnectionsList map[int][]int

// BuildConnectionsList converts an edge list into a ConnectionsList.
//
// Implementation:
//   - Stage 1: allocate an empty map sized for the node count.
//   - Stage 2: for each (a,b) in order, append b to a's sequence, then a to b's.
//
// Behavior highlights:
//   - Duplicate edges yield duplicate neighbor entries.
//   - A self-loop (a,a) appends a to its own sequence twice.
//   - Nodes never named by an edge get no key.
//   - edges is read only; nodeCount is a capacity hint and does not bound keys.
//
// Complexity: O(E) time and memory.
func BuildConnectionsList(nodeCount int, edges EdgeList) ConnectionsList {
	if nodeCount < 0 {
		nodeCount = 0
	}
	conns := make(ConnectionsList, nodeCount)
	for _, e := range edges {
		conns[e.A] = append(conns[e.A], e.B)
		conns[e.B] = append(conns[e.B], e.A)
	}

	return conns
}

// Neighbors returns node's neighbor sequence, or nil when node has no entry.
// The returned slice is shared with the list; callers must not mutate it.
func (c ConnectionsList) Neighbors(node int) []int {
	return c[node]
}

// Has reports whether node has an entry at all (dead ends have none).
func (c ConnectionsList) Has(node int) bool {
	_, ok := c[node]
	return ok
}

// Degree returns the length of node's neighbor sequence, duplicates included.
func (c ConnectionsList) Degree(node int) int {
	return len(c[node])
}

// Nodes returns every node with an entry, in ascending order.
func (c ConnectionsList) Nodes() []int {
	out := make([]int, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy so the caller may mutate neighbor slices freely.
func (c ConnectionsList) Clone() ConnectionsList {
	out := make(ConnectionsList, len(c))
	for k, nbrs := range c {
		cp := make([]int, len(nbrs))
		copy(cp, nbrs)
		out[k] = cp
	}

	return out
}
