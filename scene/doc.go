// Package scene holds the editable state behind the bfsviz views: node
// positions, the edge list, start and goal, the interaction mode and the
// owned bfs.Stepper.
//
// Every topology edit recomputes the derived adjacency matrix and
// connections list and hands the new list to the stepper. Traversal state
// survives edits; only Reset, a start/goal change or a new layout restart it.
//
// A Scene is not safe for concurrent mutation. Its Stepper is, so a driver
// goroutine may step it while the owner reads snapshots.
package scene
