// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/bfsviz/core"
)

// DefaultLabels names the lecture graph's vertices.
var DefaultLabels = []string{"S", "A", "B", "C", "D", "E", "G"}

// Label returns labels[i], or the decimal index when no label exists.
func Label(i int, labels []string) string {
	if i >= 0 && i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return strconv.Itoa(i)
}

// FormatPath renders a path as "(S A C)".
func FormatPath(p core.Path, labels []string) string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = Label(n, labels)
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// FormatQueue concatenates FormatPath of every queued path: "(S)(S A)".
func FormatQueue(queue []core.Path, labels []string) string {
	var b strings.Builder
	for _, p := range queue {
		b.WriteString(FormatPath(p, labels))
	}

	return b.String()
}

// PathEdges returns the consecutive pairs of p in both orientations.
func PathEdges(p core.Path) map[core.Edge]bool {
	out := make(map[core.Edge]bool, 2*len(p))
	for i := 0; i+1 < len(p); i++ {
		e := core.NewEdge(p[i], p[i+1])
		out[e] = true
		out[e.Reversed()] = true
	}

	return out
}
