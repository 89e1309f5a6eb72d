// Package render turns traversal state into text: the enqueued-list and path
// notation shown in the side panel, and a character canvas of the graph
// with the current path highlighted.
package render
