// SPDX-License-Identifier: MIT
// Package bfs provides the path-queue breadth-first stepper.
package bfs

import (
	"sync"

	"github.com/katalvlaran/bfsviz/core"
	"go.uber.org/zap"
)

// Stepper encapsulates mutable BFS state for one start/goal pair.
type Stepper struct {
	mu      sync.Mutex
	opts    Options
	conns   core.ConnectionsList
	start   int
	goal    int
	queue   []core.Path
	visited core.Visited
	order   []int
	steps   int
}

// New returns a Stepper over conns, already Reset to start.
// A nil conns behaves as a graph with no edges.
func New(conns core.ConnectionsList, start, goal int, opts ...Option) *Stepper {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if conns == nil {
		conns = core.ConnectionsList{}
	}
	s := &Stepper{opts: o, conns: conns, goal: goal}
	s.resetLocked(start)

	return s
}

// Reset sets queue = [[start]] and clears the visited set, visit order and
// step counter. Calling it twice with the same start yields identical state.
func (s *Stepper) Reset(start int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(start)
}

func (s *Stepper) resetLocked(start int) {
	s.start = start
	s.queue = []core.Path{{start}}
	s.visited = core.Visited{}
	s.order = nil
	s.steps = 0
}

// SetGoal changes the goal and resets the traversal from the current start.
func (s *Stepper) SetGoal(goal int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goal = goal
	s.resetLocked(s.start)
}

// SetGraph swaps the connections list used by later steps. Traversal state is
// kept; callers that want a fresh run follow with Reset.
func (s *Stepper) SetGraph(conns core.ConnectionsList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conns == nil {
		conns = core.ConnectionsList{}
	}
	s.conns = conns
}

// Step performs one BFS transition and reports what it did.
//
// Implementation:
//   - Stage 1: reseed an empty queue with [start] (Recovered).
//   - Stage 2: dequeue the head path p; mark its current node visited.
//   - Stage 3: current == goal → OutcomeGoal; p stays at the head of the queue.
//   - Stage 4: no connections entry → OutcomeDeadEnd; queue = remaining.
//   - Stage 5: children p+[nbr] for every neighbor not in the visited set;
//     queue = children ++ remaining.
//
// Only current is marked during a step, so the neighbor filter sees the
// visited set as of the step's start plus current itself.
func (s *Stepper) Step() StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps++
	res := StepResult{Step: s.steps}

	if len(s.queue) == 0 {
		s.queue = []core.Path{{s.start}}
		res.Recovered = true
	}

	head, remaining := s.queue[0], s.queue[1:]
	current, ok := head.Current()
	if !ok {
		// an empty path cannot be expanded; drop it
		s.queue = remaining
		res.Outcome = OutcomeEmpty
		s.logStep(res)
		return res
	}
	s.opts.OnDequeue(head.Clone())

	res.Current = current
	s.visit(current)

	if current == s.goal {
		res.Outcome = OutcomeGoal
		res.Path = head.Clone()
		s.logStep(res)
		return res
	}

	if !s.conns.Has(current) {
		s.queue = remaining
		res.Outcome = OutcomeDeadEnd
		s.logStep(res)
		return res
	}

	nbrs := s.conns.Neighbors(current)
	discovered := make([]core.Path, 0, len(nbrs))
	for _, nbr := range nbrs {
		if s.visited.Has(nbr) {
			continue
		}
		child := head.Extend(nbr)
		discovered = append(discovered, child)
		s.opts.OnDiscover(child.Clone())
	}

	next := make([]core.Path, 0, len(discovered)+len(remaining))
	next = append(next, discovered...)
	next = append(next, remaining...)
	s.queue = next

	res.Outcome = OutcomeExpanded
	res.Path = head.Clone()
	res.Discovered = core.ClonePaths(discovered)
	s.logStep(res)

	return res
}

// visit marks node and records first-time visits in order.
func (s *Stepper) visit(node int) {
	if s.visited.Has(node) {
		return
	}
	s.visited.Mark(node)
	s.order = append(s.order, node)
	s.opts.OnVisit(node)
}

func (s *Stepper) logStep(res StepResult) {
	s.opts.Logger.Debug("bfs step",
		zap.Int("step", res.Step),
		zap.Stringer("outcome", res.Outcome),
		zap.Int("current", res.Current),
		zap.Int("queue", len(s.queue)),
		zap.Int("visited", len(s.visited)),
		zap.Bool("recovered", res.Recovered),
	)
}

// Queue returns a deep copy of the frontier, head first.
func (s *Stepper) Queue() []core.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.ClonePaths(s.queue)
}

// Visited returns a copy of the visited set.
func (s *Stepper) Visited() core.Visited {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visited.Clone()
}

// VisitOrder returns nodes in the order they were first visited.
func (s *Stepper) VisitOrder() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// CurrentPath returns a copy of the head of the queue, or nil when empty.
func (s *Stepper) CurrentPath() core.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil
	}
	return s.queue[0].Clone()
}

// CurrentNode returns the last node of the head path.
func (s *Stepper) CurrentNode() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].Current()
}

// Done reports whether the head path ends at the goal. The next Step
// dequeues it and reports OutcomeGoal.
func (s *Stepper) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) > 0 && s.queue[0].Ends(s.goal)
}

// Reached reports whether a step has reported OutcomeGoal since the last
// reset: the goal is visited and its path is the head of the queue.
// Drivers stop here.
func (s *Stepper) Reached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) > 0 && s.queue[0].Ends(s.goal) && s.visited.Has(s.goal)
}

// Exhausted reports whether the frontier is empty.
func (s *Stepper) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) == 0
}

// Start returns the start node.
func (s *Stepper) Start() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start
}

// Goal returns the goal node.
func (s *Stepper) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

// Steps returns the number of Step calls since the last Reset.
func (s *Stepper) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}
