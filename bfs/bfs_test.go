// SPDX-License-Identifier: MIT
package bfs_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// lecture is the seven-node graph used throughout the package tests.
func lecture() core.ConnectionsList {
	edges := core.EdgesFromPairs([][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 4}, {2, 3}, {3, 5}, {4, 6}})
	return core.BuildConnectionsList(7, edges)
}

// runUntil steps until pred holds or limit steps were taken.
func runUntil(s *bfs.Stepper, limit int, pred func(bfs.StepResult) bool) []bfs.StepResult {
	var out []bfs.StepResult
	for i := 0; i < limit; i++ {
		r := s.Step()
		out = append(out, r)
		if pred(r) {
			break
		}
	}
	return out
}

func TestNew_InitialState(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	require.Equal(t, []core.Path{{0}}, s.Queue())
	require.Empty(t, s.Visited())
	require.Equal(t, 0, s.Steps())
	require.Equal(t, 0, s.Start())
	require.Equal(t, 6, s.Goal())
	require.False(t, s.Done())
	require.False(t, s.Exhausted())

	cur, ok := s.CurrentNode()
	require.True(t, ok)
	require.Equal(t, 0, cur)
}

func TestStep_LectureFindsGoal(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)

	results := runUntil(s, 50, func(r bfs.StepResult) bool { return r.Outcome == bfs.OutcomeGoal })
	last := results[len(results)-1]

	require.Equal(t, bfs.OutcomeGoal, last.Outcome)
	require.Equal(t, core.Path{0, 1, 4, 6}, last.Path)
	require.Equal(t, 7, last.Step)
	require.Equal(t, []int{0, 1, 2, 3, 5, 4, 6}, s.VisitOrder())
	require.True(t, s.Done())
	require.True(t, s.Reached())
	require.Equal(t, core.Path{0, 1, 4, 6}, s.CurrentPath())
}

func TestStep_QueueTrace(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)

	want := [][]core.Path{
		{{0, 1}, {0, 2}},
		{{0, 1, 2}, {0, 1, 4}, {0, 2}},
		{{0, 1, 2, 3}, {0, 1, 4}, {0, 2}},
		{{0, 1, 2, 3, 5}, {0, 1, 4}, {0, 2}},
		{{0, 1, 4}, {0, 2}},
		{{0, 1, 4, 6}, {0, 2}},
	}
	for i, w := range want {
		s.Step()
		if diff := cmp.Diff(w, s.Queue()); diff != "" {
			t.Fatalf("queue after step %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestStep_GoalIsIdempotent(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	runUntil(s, 50, func(r bfs.StepResult) bool { return r.Outcome == bfs.OutcomeGoal })
	before := s.Queue()

	for i := 0; i < 3; i++ {
		r := s.Step()
		require.Equal(t, bfs.OutcomeGoal, r.Outcome)
		require.Equal(t, core.Path{0, 1, 4, 6}, r.Path)
	}
	require.Equal(t, before, s.Queue())
}

func TestReached(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	for i := 0; i < 6; i++ {
		s.Step()
	}
	// the goal path is queued at the head but not yet dequeued
	require.True(t, s.Done())
	require.False(t, s.Reached())
	require.False(t, s.Visited().Has(6))

	r := s.Step()
	require.Equal(t, bfs.OutcomeGoal, r.Outcome)
	require.True(t, s.Reached())
	require.True(t, s.Visited().Has(6))

	s.Reset(0)
	require.False(t, s.Reached())
}

func TestStep_StartIsGoal(t *testing.T) {
	s := bfs.New(lecture(), 3, 3)
	require.True(t, s.Done())
	require.False(t, s.Reached())
	r := s.Step()
	require.Equal(t, bfs.OutcomeGoal, r.Outcome)
	require.Equal(t, core.Path{3}, r.Path)
	require.True(t, s.Visited().Has(3))
}

func TestStep_UnreachableGoalDrainsAndRecovers(t *testing.T) {
	edges := core.EdgesFromPairs([][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 4}, {2, 3}, {3, 5}, {4, 6}})
	conns := core.BuildConnectionsList(8, edges)
	s := bfs.New(conns, 0, 7)

	results := runUntil(s, 100, func(bfs.StepResult) bool { return s.Exhausted() })
	require.True(t, s.Exhausted())
	require.Len(t, results, 8)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.Visited().Sorted())
	for _, r := range results {
		require.NotEqual(t, bfs.OutcomeGoal, r.Outcome)
	}

	// an empty queue is reseeded rather than raising
	r := s.Step()
	require.True(t, r.Recovered)
	require.Equal(t, 0, r.Current)
	require.Equal(t, bfs.OutcomeExpanded, r.Outcome)
	require.Empty(t, r.Discovered)
	require.True(t, s.Exhausted())
	require.Equal(t, []int{0, 1, 2, 3, 5, 4, 6}, s.VisitOrder())
}

func TestStep_DuplicatesPrunedLazily(t *testing.T) {
	// diamond: 0-1, 0-2, 1-3, 2-3
	conns := core.BuildConnectionsList(4, core.EdgesFromPairs([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}))
	s := bfs.New(conns, 0, 9)

	s.Step()
	s.Step()
	s.Step()
	// node 2 now ends two queued paths
	require.Equal(t, []core.Path{{0, 1, 3, 2}, {0, 2}}, s.Queue())

	r := s.Step()
	require.Equal(t, 2, r.Current)
	require.Empty(t, r.Discovered)
	require.Equal(t, []core.Path{{0, 2}}, s.Queue())

	r = s.Step()
	require.Equal(t, 2, r.Current)
	require.Equal(t, bfs.OutcomeExpanded, r.Outcome)
	require.True(t, s.Exhausted())
	require.Equal(t, []int{0, 1, 3, 2}, s.VisitOrder())
}

func TestStep_DeadEnd(t *testing.T) {
	// node 2 is isolated and has no connections entry
	conns := core.BuildConnectionsList(2, core.EdgesFromPairs([][2]int{{0, 1}}))
	s := bfs.New(conns, 2, 0)

	r := s.Step()
	require.Equal(t, bfs.OutcomeDeadEnd, r.Outcome)
	require.Equal(t, 2, r.Current)
	require.Nil(t, r.Path)
	require.True(t, s.Exhausted())
	require.True(t, s.Visited().Has(2))

	r = s.Step()
	require.True(t, r.Recovered)
	require.Equal(t, bfs.OutcomeDeadEnd, r.Outcome)
}

func TestStep_SelfLoopIgnored(t *testing.T) {
	conns := core.BuildConnectionsList(2, core.EdgesFromPairs([][2]int{{0, 0}, {0, 1}}))
	s := bfs.New(conns, 0, 1)

	r := s.Step()
	require.Equal(t, []core.Path{{0, 1}}, r.Discovered)
	r = s.Step()
	require.Equal(t, bfs.OutcomeGoal, r.Outcome)
	require.Equal(t, core.Path{0, 1}, r.Path)
}

func TestStep_DuplicateEdges(t *testing.T) {
	conns := core.BuildConnectionsList(2, core.EdgesFromPairs([][2]int{{0, 1}, {0, 1}}))
	s := bfs.New(conns, 0, 5)

	r := s.Step()
	require.Equal(t, []core.Path{{0, 1}, {0, 1}}, r.Discovered)
}

func TestNew_NilConnections(t *testing.T) {
	s := bfs.New(nil, 0, 1)
	r := s.Step()
	require.Equal(t, bfs.OutcomeDeadEnd, r.Outcome)
}

func TestReset_Idempotent(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	s.Step()
	s.Step()

	s.Reset(2)
	q1, v1 := s.Queue(), s.Visited()
	s.Reset(2)
	require.Equal(t, q1, s.Queue())
	require.Equal(t, v1, s.Visited())
	require.Equal(t, []core.Path{{2}}, s.Queue())
	require.Empty(t, s.VisitOrder())
	require.Equal(t, 0, s.Steps())
	require.Equal(t, 2, s.Start())
}

func TestSetGoal_Resets(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	s.Step()
	s.SetGoal(5)
	require.Equal(t, 5, s.Goal())
	require.Equal(t, []core.Path{{0}}, s.Queue())

	r := runUntil(s, 50, func(r bfs.StepResult) bool { return r.Outcome == bfs.OutcomeGoal })
	require.Equal(t, core.Path{0, 1, 2, 3, 5}, r[len(r)-1].Path)
}

func TestSetGraph_KeepsState(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	s.Step()
	s.SetGraph(core.BuildConnectionsList(7, nil))
	require.Equal(t, []core.Path{{0, 1}, {0, 2}}, s.Queue())

	r := s.Step()
	require.Equal(t, bfs.OutcomeDeadEnd, r.Outcome)
}

func TestSnapshots_AreCopies(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	s.Step()

	q := s.Queue()
	q[0][0] = 99
	v := s.Visited()
	v.Mark(42)
	p := s.CurrentPath()
	p[0] = 77

	require.Equal(t, []core.Path{{0, 1}, {0, 2}}, s.Queue())
	require.False(t, s.Visited().Has(42))
}

func TestStep_ResultIsDetached(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	r := s.Step()
	r.Discovered[0][1] = 99
	r.Path[0] = 99
	require.Equal(t, []core.Path{{0, 1}, {0, 2}}, s.Queue())
}

func TestHooks(t *testing.T) {
	var dequeued, discovered []core.Path
	var visited []int
	s := bfs.New(lecture(), 0, 6,
		bfs.WithOnDequeue(func(p core.Path) { dequeued = append(dequeued, p) }),
		bfs.WithOnDiscover(func(p core.Path) { discovered = append(discovered, p) }),
		bfs.WithOnVisit(func(n int) { visited = append(visited, n) }),
		bfs.WithOnVisit(nil), // nil keeps the previous hook
	)
	s.Step()
	s.Step()

	require.Equal(t, []core.Path{{0}, {0, 1}}, dequeued)
	require.Equal(t, []core.Path{{0, 1}, {0, 2}, {0, 1, 2}, {0, 1, 4}}, discovered)
	require.Equal(t, []int{0, 1}, visited)
}

func TestWithLogger_EmitsStepEntries(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	s := bfs.New(lecture(), 0, 6, bfs.WithLogger(zap.New(obs)), bfs.WithLogger(nil))
	s.Step()

	entries := logs.FilterMessage("bfs step").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "expanded", fields["outcome"])
	require.EqualValues(t, 2, fields["queue"])
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "expanded", bfs.OutcomeExpanded.String())
	require.Equal(t, "goal", bfs.OutcomeGoal.String())
	require.Equal(t, "dead-end", bfs.OutcomeDeadEnd.String())
	require.Equal(t, "empty", bfs.OutcomeEmpty.String())
	require.Equal(t, "unknown", bfs.Outcome(42).String())
}

func TestStepper_ConcurrentReads(t *testing.T) {
	s := bfs.New(lecture(), 0, 6)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Step()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			q := s.Queue()
			for _, p := range q {
				assert.NotEmpty(t, p)
			}
			_ = s.Visited()
			_, _ = s.CurrentNode()
		}
	}()
	wg.Wait()
	require.True(t, s.Done())
}
