// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play          key.Binding
	Next          key.Binding
	Reset         key.Binding
	ModeMove      key.Binding
	ModeAdd       key.Binding
	ModeConnect   key.Binding
	ModeStart     key.Binding
	ModeEnd       key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Act           key.Binding
	DeleteEdge    key.Binding
	ConnectAll    key.Binding
	DisconnectAll key.Binding
	PresetMIT     key.Binding
	PresetGrid    key.Binding
	PresetTree    key.Binding
	Grow          key.Binding
	Shrink        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Play:          key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/stop")),
		Next:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		ModeMove:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		ModeAdd:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		ModeConnect:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
		ModeStart:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set start")),
		ModeEnd:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "set end")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Act:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "act")),
		DeleteEdge:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete edge")),
		ConnectAll:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "connect all")),
		DisconnectAll: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "disconnect all")),
		PresetMIT:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "MIT")),
		PresetGrid:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "grid")),
		PresetTree:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tree")),
		Grow:          key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger")),
		Shrink:        key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Next, k.Reset, k.Act, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Next, k.Reset},
		{k.ModeMove, k.ModeAdd, k.ModeConnect, k.ModeStart, k.ModeEnd},
		{k.Up, k.Down, k.Left, k.Right, k.Act},
		{k.DeleteEdge, k.ConnectAll, k.DisconnectAll},
		{k.PresetMIT, k.PresetGrid, k.PresetTree, k.Grow, k.Shrink},
		{k.Help, k.Quit},
	}
}
