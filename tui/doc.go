// SPDX-License-Identifier: MIT

// Package tui is the interactive terminal front end: a bubbletea model over
// a scene.Scene with keyboard stand-ins for pointer actions.
//
// A cursor moves over the canvas with the arrow keys and enter acts at the
// cursor the way a click would in the current mode. The model is used from
// the bubbletea event loop only. Play is driven by tea.Tick messages, so
// every step also happens on that loop.
//
// Keys:
//
//	space       play / stop
//	n           one step
//	r           reset the traversal
//	m a c s e   move, add, connect, set start, set end modes
//	arrows      move the cursor (hjkl also work)
//	enter       act at the cursor
//	x           delete the edge under the cursor
//	C D         connect all, disconnect all
//	1 2 3       MIT lecture, grid, binary tree presets
//	+ -         grow or shrink the grid or tree preset
//	?           toggle full help
//	q           quit
package tui
