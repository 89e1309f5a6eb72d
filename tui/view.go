// SPDX-License-Identifier: MIT

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/bfsviz/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	panelStyle = lipgloss.NewStyle().
			Width(panelWidth-2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			PaddingLeft(1)

	goalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func itoa(i int) string { return strconv.Itoa(i) }

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	f := render.FrameOf(m.scene)
	cursor := m.cursorPoint()
	f.Cursor = &cursor
	canvas := m.canvas.DrawFrame(f)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, panelStyle.Render(m.renderPanel())))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderHeader() string {
	state := "paused"
	if m.playing {
		state = "playing"
	}
	return titleStyle.Render("bfsviz") + "  " +
		modeStyle.Render("mode: "+m.scene.Mode().String()) + "  " +
		"preset: " + m.preset.String() + "  " + state
}

func (m Model) renderPanel() string {
	var b strings.Builder

	if p := m.scene.GoalPath(); p != nil {
		b.WriteString(goalStyle.Render(render.FormatPath(p, m.labels)))
	} else {
		b.WriteString(" - ")
	}
	b.WriteString("\n\n")

	st := m.scene.Stepper()
	b.WriteString("step " + itoa(st.Steps()) + "\n")
	b.WriteString("Enqueued:\n")
	b.WriteString(wrap(render.FormatQueue(st.Queue(), m.labels), panelWidth-4))

	return b.String()
}

// wrap breaks s into lines of at most width runes, preferring path boundaries.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var (
		lines []string
		cur   strings.Builder
	)
	n := 0
	for _, part := range strings.SplitAfter(s, ")") {
		if part == "" {
			continue
		}
		l := len([]rune(part))
		if n > 0 && n+l > width {
			lines = append(lines, cur.String())
			cur.Reset()
			n = 0
		}
		cur.WriteString(part)
		n += l
	}
	if n > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n")
}
