// SPDX-License-Identifier: MIT

package scene

import (
	"math"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
)

// NodeAt returns the node nearest to p within radius. Ties go to the lower index.
func (s *Scene) NodeAt(p builder.Point, radius float64) (int, bool) {
	best, bestDist := NoNode, math.Inf(1)
	for i, n := range s.nodes {
		d := math.Hypot(n.X-p.X, n.Y-p.Y)
		if d <= radius && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best != NoNode
}

// EdgeAt returns the edge whose segment passes nearest to p within tolerance.
func (s *Scene) EdgeAt(p builder.Point, tolerance float64) (core.Edge, bool) {
	var (
		best     core.Edge
		found    bool
		bestDist = math.Inf(1)
	)
	for _, e := range s.edges {
		d := segmentDistance(p, s.nodes[e.A], s.nodes[e.B])
		if d <= tolerance && d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

// segmentDistance is the Euclidean distance from p to segment ab.
func segmentDistance(p, a, b builder.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
