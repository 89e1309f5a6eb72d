// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// api.go - public entry points: Layout, Kind and the Build orchestrator.
// Constructors live in impl_*.go.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bfsviz/core"
)

// Point is a node position in abstract canvas units.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Layout is a drawable graph: Nodes[i] is the position of vertex i.
type Layout struct {
	Nodes []Point
	Edges core.EdgeList
}

// NodeCount returns len(l.Nodes).
func (l Layout) NodeCount() int { return len(l.Nodes) }

// Clone returns a deep copy of l.
func (l Layout) Clone() Layout {
	nodes := make([]Point, len(l.Nodes))
	copy(nodes, l.Nodes)

	return Layout{Nodes: nodes, Edges: l.Edges.Clone()}
}

// Kind selects a preset.
type Kind int

const (
	// MIT is the seven-node lecture graph.
	MIT Kind = iota
	// GridKind is the size×size orthogonal grid.
	GridKind
	// BinaryTreeKind is the complete binary tree.
	BinaryTreeKind
)

var kindNames = map[Kind]string{
	MIT:            "mit",
	GridKind:       "grid",
	BinaryTreeKind: "binary-tree",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every preset in menu order.
func Kinds() []Kind { return []Kind{MIT, GridKind, BinaryTreeKind} }

// ParseKind resolves a preset name, case-insensitively.
// Accepted: "mit", "grid", "binary-tree", "binarytree", "tree".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mit", "lecture":
		return MIT, nil
	case "grid":
		return GridKind, nil
	case "binary-tree", "binarytree", "binary_tree", "tree":
		return BinaryTreeKind, nil
	default:
		return 0, builderErrorf(MethodParseKind, ErrUnknownKind, "%q", s)
	}
}

// Build resolves opts and runs the constructor selected by kind.
// Constructor errors are wrapped with "Build: <kind>: %w".
func Build(kind Kind, opts ...BuilderOption) (Layout, error) {
	cfg := newBuilderConfig(opts...)

	var (
		l   Layout
		err error
	)
	switch kind {
	case MIT:
		l = MITLecture()
	case GridKind:
		l, err = Grid(cfg.gridSize)
	case BinaryTreeKind:
		l, err = BinaryTree(cfg.treeDepth)
	default:
		return Layout{}, builderErrorf(MethodBuild, ErrUnknownKind, "%v", kind)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %v: %w", MethodBuild, kind, err)
	}

	return l, nil
}
