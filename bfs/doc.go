// Package bfs provides a single-step breadth-first search engine over a queue
// of partial paths, built for interactive "Next"/"Play" demonstrations.
//
// What
//
//   - A Stepper owns the only mutable traversal state: the frontier queue of
//     paths and the visited set. Reset and Step are its only mutators.
//   - Step dequeues the head path, marks its current (last) node visited,
//     stops on the goal, otherwise extends the path by every neighbor not yet
//     visited and prepends those children to the remaining queue.
//   - Functional hooks fire at three stages:
//   - OnDequeue (head path taken off the queue)
//   - OnVisit   (current node marked visited for the first time)
//   - OnDiscover (a new child path created)
//
// Ordering
//
//	Children are placed ahead of older queued paths, and nodes are only marked
//	visited when dequeued. The same node may therefore sit at the end of
//	several queued paths; duplicates are pruned lazily when dequeued, never at
//	enqueue time. The enqueued list is user-visible, so this order is kept
//	exactly.
//
// Leniency
//
//	Step never fails. An empty queue is reseeded with [start]; a node without
//	a connections entry is a dead end and its path simply dies.
//
// Concurrency
//
//	Every method takes the Stepper's mutex, so a Step is atomic with respect
//	to concurrent snapshot reads. Hooks run while the mutex is held and must
//	not call back into the Stepper.
//
// Complexity (per Step, d = degree of current, L = path length, Q = queue length)
//
//   - Time:   O(d·L + Q)
//   - Memory: O(L) per queued path
//
// Usage
//
//	conns := core.BuildConnectionsList(n, edges)
//	s := bfs.New(conns, 0, 6, bfs.WithLogger(logger))
//	for !s.Reached() && !s.Exhausted() {
//		res := s.Step()
//		fmt.Println(res.Step, res.Outcome, s.Queue())
//	}
package bfs
