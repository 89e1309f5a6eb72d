// Package driver runs a traversal on a timer: the "Play"/"Stop" pair of the
// interactive views and the blocking loop of the headless CLI.
//
// An Animator calls Step once per interval from its own goroutine and stops
// by itself when the goal reaches the head of the queue, when a step leaves
// the queue exhausted, or when a step limit is hit. Stop cancels between
// steps and never touches traversal state.
package driver
