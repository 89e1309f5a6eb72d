// SPDX-License-Identifier: MIT
// Package core declares Edge, EdgeList, Path, Visited and their helpers.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is an undirected pair of node indices. A and B are zero-based indices
// into the implicit node table. Orientation carries no meaning; (A,B) and
// (B,A) describe the same connection.
type Edge struct {
	A int
	B int
}

// NewEdge is shorthand for Edge{A: a, B: b}.
func NewEdge(a, b int) Edge { return Edge{A: a, B: b} }

// Ints returns the edge as a two-element slice, the shape matrix.RemoveEdge
// accepts.
func (e Edge) Ints() []int { return []int{e.A, e.B} }

// Reversed returns the mirror orientation (B,A).
func (e Edge) Reversed() Edge { return Edge{A: e.B, B: e.A} }

// Same reports whether e and o connect the same endpoints in either orientation.
func (e Edge) Same(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// IsLoop reports whether both endpoints coincide.
func (e Edge) IsLoop() bool { return e.A == e.B }

// String implements fmt.Stringer as "(a,b)".
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.A, e.B) }

// EdgeList is an ordered sequence of edges. Duplicates are permitted and never
// removed by this package.
type EdgeList []Edge

// EdgesFromPairs converts [][2]int literals into an EdgeList.
func EdgesFromPairs(pairs [][2]int) EdgeList {
	out := make(EdgeList, len(pairs))
	for i, p := range pairs {
		out[i] = Edge{A: p[0], B: p[1]}
	}

	return out
}

// Clone returns an independent copy of the list.
func (l EdgeList) Clone() EdgeList {
	if l == nil {
		return nil
	}
	out := make(EdgeList, len(l))
	copy(out, l)

	return out
}

// MaxIndex returns the largest endpoint index in l, or -1 for an empty list.
func (l EdgeList) MaxIndex() int {
	maxIdx := -1
	for _, e := range l {
		if e.A > maxIdx {
			maxIdx = e.A
		}
		if e.B > maxIdx {
			maxIdx = e.B
		}
	}

	return maxIdx
}

// Path is a walk from the search start; the last element is the current node.
// Paths handed out by this module are never empty.
type Path []int

// Current returns the last node of p. ok is false for an empty path.
func (p Path) Current() (node int, ok bool) {
	if len(p) == 0 {
		return 0, false
	}

	return p[len(p)-1], true
}

// Extend returns a new path p + [next]; p itself is not modified, so sibling
// extensions of the same parent never share a backing array.
func (p Path) Extend(next int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = next

	return out
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Ends reports whether p's current node equals node.
func (p Path) Ends(node int) bool {
	cur, ok := p.Current()
	return ok && cur == node
}

// String renders the path as "[0 1 4 6]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = fmt.Sprint(n)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// ClonePaths deep-copies a queue of paths.
func ClonePaths(paths []Path) []Path {
	if paths == nil {
		return nil
	}
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = p.Clone()
	}

	return out
}

// Visited records nodes that have been dequeued as "current" at least once.
// Presence means visited; the stored value is always true.
type Visited map[int]bool

// Has reports whether node was visited.
func (v Visited) Has(node int) bool {
	_, ok := v[node]
	return ok
}

// Mark records node as visited. Marking twice is a no-op.
func (v Visited) Mark(node int) { v[node] = true }

// Clone returns an independent copy of the set.
func (v Visited) Clone() Visited {
	out := make(Visited, len(v))
	for k := range v {
		out[k] = true
	}

	return out
}

// Sorted returns the visited node indices in ascending order.
func (v Visited) Sorted() []int {
	out := make([]int, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
