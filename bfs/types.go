// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and step results
// for the path-queue breadth-first stepper.
package bfs

import (
	"github.com/katalvlaran/bfsviz/core"
	"go.uber.org/zap"
)

// Outcome classifies what a single Step did.
type Outcome int

const (
	// OutcomeExpanded means the head path was extended by its unvisited neighbors
	// (possibly none).
	OutcomeExpanded Outcome = iota

	// OutcomeGoal means the head path's current node is the goal.
	OutcomeGoal

	// OutcomeDeadEnd means the current node has no connections entry; the path died.
	OutcomeDeadEnd

	// OutcomeEmpty means no path could be dequeued.
	OutcomeEmpty
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeExpanded:
		return "expanded"
	case OutcomeGoal:
		return "goal"
	case OutcomeDeadEnd:
		return "dead-end"
	case OutcomeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// StepResult describes one Step transition.
//   - Step:       1-based step counter since the last Reset.
//   - Outcome:    what happened.
//   - Current:    the dequeued path's current node (meaningless for OutcomeEmpty).
//   - Path:       the advanced path; the discovered path on OutcomeGoal;
//     nil on OutcomeDeadEnd and OutcomeEmpty.
//   - Discovered: child paths created this step, in neighbor order.
//   - Recovered:  the queue was empty and was reseeded with [start].
type StepResult struct {
	Step       int
	Outcome    Outcome
	Current    int
	Path       core.Path
	Discovered []core.Path
	Recovered  bool
}

// Option configures a Stepper via functional arguments.
type Option func(*Options)

// Options holds hooks and the logger used by a Stepper.
type Options struct {
	// OnDequeue is called with the head path each time one is dequeued.
	OnDequeue func(p core.Path)

	// OnVisit is called when a node is marked visited for the first time.
	OnVisit func(node int)

	// OnDiscover is called for every child path appended during expansion.
	OnDiscover func(p core.Path)

	// Logger receives a debug entry per step. Never nil after DefaultOptions.
	Logger *zap.Logger
}

// DefaultOptions returns no-op hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		OnDequeue:  func(core.Path) {},
		OnVisit:    func(int) {},
		OnDiscover: func(core.Path) {},
		Logger:     zap.NewNop(),
	}
}

// WithOnDequeue registers a callback run on every dequeue.
func WithOnDequeue(fn func(p core.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback run on first visit of a node.
func WithOnVisit(fn func(node int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDiscover registers a callback run for every newly discovered path.
func WithOnDiscover(fn func(p core.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithLogger sets the step logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
