// Package bfsviz is a step-by-step breadth-first search visualizer for small
// graphs: load a preset or draw your own, then watch the queue grow one
// expansion at a time.
//
// 🚀 What is bfsviz?
//
//	A small, dependency-light toolkit that brings together:
//		• Core primitives: edges, paths, visited sets & connections lists
//		• Matrix views: a symmetric adjacency matrix with bulk edits
//		• Presets: the MIT lecture graph, square grids, binary trees
//		• A resumable BFS stepper with hooks and snapshots
//		• An animation driver, a text renderer and a terminal UI
//		• YAML/TOML config with live reload, zap logging, Prometheus dumps
//
// ✨ Why choose bfsviz?
//
//   - Every step is observable: queue, visited set and goal path are snapshots
//   - Deterministic: the same graph and start always give the same trace
//   - Editable: add, move and connect nodes mid-run without losing progress
//   - Extensible: add custom hooks (OnDequeue, OnVisit, OnDiscover…)
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     Edge, Path, Visited & ConnectionsList types
//	matrix/   adjacency matrix representation + edge-list converters
//	builder/  MIT lecture, grid & binary-tree layouts
//	bfs/      the Stepper: one expansion per Step
//	scene/    the editable graph, endpoints & interaction modes
//	render/   labels, queue formatting & the character canvas
//	driver/   fixed-interval animation over a Stepper
//	config/   YAML/TOML config, validation & file watching
//	logging/  zap logger construction with rotating files
//	metrics/  Prometheus counters, gauges & text dumps
//	tui/      the bubbletea viewer
//	cmd/      the bfsviz command
//
// Quick ASCII example (the lecture graph):
//
//	S───A───D
//	│  ╱    │
//	B       G
//	│
//	C───E
//
// Stepping from S toward G visits S A B C E D G and ends with the path
// (S A D G) at the head of the queue.
//
//	go install github.com/katalvlaran/bfsviz/cmd/bfsviz@latest
package bfsviz
