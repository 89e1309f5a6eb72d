// SPDX-License-Identifier: MIT
// Package: bfsviz/render
//
// canvas.go - character-cell plotting of a Frame.
//
// Layering (later wins): plain edges, pending edge, path edges, cursor, node labels.

package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/scene"
)

const (
	edgeRune    = '·'
	pathRune    = '•'
	pendingRune = ':'
	cursorRune  = '+'
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellEdge
	cellPending
	cellPath
	cellCursor
	cellNode
	cellLeg
	cellStart
	cellGoal
	cellCurrent
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellEdge:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	cellPending: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	cellPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	cellCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	cellNode:    lipgloss.NewStyle().Bold(true),
	cellLeg:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
	cellStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	cellGoal:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	cellCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Reverse(true),
}

// Canvas maps abstract units to character cells: column = round(X·ScaleX),
// row = round(Y·ScaleY). Cells outside Width×Height are clipped.
type Canvas struct {
	Width  int
	Height int
	ScaleX float64
	ScaleY float64
	Styled bool
	Labels []string
}

// Fit returns a styled canvas of the given size whose scale fits every node.
func Fit(width, height int, nodes []builder.Point) Canvas {
	maxX, maxY := 1.0, 1.0
	for _, p := range nodes {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	// leave room for a two-character label at the right edge
	sx := float64(width-3) / maxX
	sy := float64(height-1) / maxY

	return Canvas{
		Width:  width,
		Height: height,
		ScaleX: math.Max(sx, 0),
		ScaleY: math.Max(sy, 0),
		Styled: true,
		Labels: DefaultLabels,
	}
}

// Cell returns the character cell of p.
func (c Canvas) Cell(p builder.Point) (col, row int) {
	return int(math.Round(p.X * c.ScaleX)), int(math.Round(p.Y * c.ScaleY))
}

// Point maps a character cell back to abstract units.
func (c Canvas) Point(col, row int) builder.Point {
	var p builder.Point
	if c.ScaleX != 0 {
		p.X = float64(col) / c.ScaleX
	}
	if c.ScaleY != 0 {
		p.Y = float64(row) / c.ScaleY
	}
	return p
}

// Draw renders the current state of s.
func (c Canvas) Draw(s *scene.Scene) string {
	return c.DrawFrame(FrameOf(s))
}

// DrawFrame renders f. Lines are right-trimmed and joined with "\n".
func (c Canvas) DrawFrame(f Frame) string {
	if c.Width <= 0 || c.Height <= 0 {
		return ""
	}
	g := newGrid(c.Width, c.Height)
	in := func(i int) bool { return i >= 0 && i < len(f.Nodes) }

	onPath := PathEdges(f.Path)
	for _, e := range f.Edges {
		if e.IsLoop() || !in(e.A) || !in(e.B) {
			continue
		}
		kind, r := cellEdge, edgeRune
		if onPath[e] {
			kind, r = cellPath, pathRune
		}
		c.line(g, f.Nodes[e.A], f.Nodes[e.B], r, kind)
	}
	isLeg := make(map[int]bool, len(f.Legs))
	for _, l := range f.Legs {
		isLeg[l] = true
	}
	if len(f.Legs) == 2 && in(f.Legs[0]) && in(f.Legs[1]) {
		c.line(g, f.Nodes[f.Legs[0]], f.Nodes[f.Legs[1]], pendingRune, cellPending)
	}
	if f.Cursor != nil {
		col, row := c.Cell(*f.Cursor)
		g.set(col, row, cursorRune, cellCursor)
	}

	current, hasCurrent := f.Path.Current()
	for i, p := range f.Nodes {
		kind := cellNode
		switch {
		case hasCurrent && i == current:
			kind = cellCurrent
		case isLeg[i]:
			kind = cellLeg
		case i == f.Goal:
			kind = cellGoal
		case i == f.Start:
			kind = cellStart
		}
		col, row := c.Cell(p)
		for k, r := range []rune(Label(i, c.Labels)) {
			g.set(col+k, row, r, kind)
		}
	}

	return g.render(c.Styled)
}

// line plots segment ab with Bresenham's algorithm.
func (c Canvas) line(g *grid, a, b builder.Point, r rune, kind cellKind) {
	x0, y0 := c.Cell(a)
	x1, y1 := c.Cell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.setLine(x0, y0, r, kind)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type grid struct {
	w, h  int
	runes [][]rune
	kinds [][]cellKind
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, runes: make([][]rune, h), kinds: make([][]cellKind, h)}
	for y := range g.runes {
		g.runes[y] = []rune(strings.Repeat(" ", w))
		g.kinds[y] = make([]cellKind, w)
	}
	return g
}

func (g *grid) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.runes[y][x], g.kinds[y][x] = r, k
}

// setLine never lets a plain edge overwrite a path edge.
func (g *grid) setLine(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	if g.kinds[y][x] > k {
		return
	}
	g.set(x, y, r, k)
}

func (g *grid) render(styled bool) string {
	lines := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		end := g.w
		for end > 0 && g.kinds[y][end-1] == cellEmpty {
			end--
		}
		if !styled {
			lines[y] = string(g.runes[y][:end])
			continue
		}
		var b strings.Builder
		for x := 0; x < end; {
			k := g.kinds[y][x]
			run := x
			for run < end && g.kinds[y][run] == k {
				run++
			}
			seg := string(g.runes[y][x:run])
			if st, ok := cellStyles[k]; ok {
				seg = st.Render(seg)
			}
			b.WriteString(seg)
			x = run
		}
		lines[y] = b.String()
	}

	return strings.Join(lines, "\n")
}
