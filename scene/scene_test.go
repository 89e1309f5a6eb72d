// SPDX-License-Identifier: MIT
package scene_test

import (
	"testing"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
	"github.com/katalvlaran/bfsviz/scene"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T, opts ...scene.Option) *scene.Scene {
	t.Helper()
	s, err := scene.New(opts...)
	require.NoError(t, err)
	return s
}

func drain(s *scene.Scene, limit int) bfs.StepResult {
	var r bfs.StepResult
	for i := 0; i < limit; i++ {
		r = s.Next()
		if r.Outcome == bfs.OutcomeGoal || s.Stepper().Exhausted() {
			break
		}
	}
	return r
}

func TestNew_Defaults(t *testing.T) {
	s := newScene(t)
	require.Equal(t, 7, s.NodeCount())
	require.Equal(t, 0, s.Start())
	require.Equal(t, 6, s.Goal())
	require.Equal(t, scene.ModeMove, s.Mode())
	l1, l2 := s.Legs()
	require.Equal(t, scene.NoNode, l1)
	require.Equal(t, scene.NoNode, l2)
	require.Equal(t, matrix.FromEdgeList(7, builder.MITLecture().Edges), s.Matrix())
	require.Nil(t, s.GoalPath())
}

func TestNew_BadLayout(t *testing.T) {
	l := builder.Layout{Nodes: []builder.Point{{X: 1, Y: 1}}, Edges: core.EdgeList{{A: 0, B: 3}}}
	_, err := scene.New(scene.WithLayout(l))
	require.ErrorIs(t, err, scene.ErrUnknownNode)
}

func TestNext_ReachesGoal(t *testing.T) {
	s := newScene(t)
	r := drain(s, 50)
	require.Equal(t, bfs.OutcomeGoal, r.Outcome)
	require.Equal(t, core.Path{0, 1, 4, 6}, s.GoalPath())
}

func TestGoalPath_WaitsForGoalStep(t *testing.T) {
	s := newScene(t)
	for i := 0; i < 6; i++ {
		s.Next()
	}
	require.True(t, s.Stepper().Done())
	require.Nil(t, s.GoalPath())

	s.Next()
	require.Equal(t, core.Path{0, 1, 4, 6}, s.GoalPath())
}

func TestAddNode(t *testing.T) {
	s := newScene(t)
	_, err := s.AddNode(builder.Point{X: 2, Y: 2})
	require.ErrorIs(t, err, scene.ErrWrongMode)

	s.SetMode(scene.ModeAdd)
	i, err := s.AddNode(builder.Point{X: 2, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 7, i)
	require.Equal(t, 8, s.Matrix().Size())
	require.False(t, s.Connections().Has(7))
}

func TestMoveNode(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.MoveNode(2, builder.Point{X: 5, Y: 5}))
	require.Equal(t, builder.Point{X: 5, Y: 5}, s.Nodes()[2])
	require.ErrorIs(t, s.MoveNode(9, builder.Point{}), scene.ErrUnknownNode)

	s.SetMode(scene.ModeConnect)
	require.ErrorIs(t, s.MoveNode(2, builder.Point{}), scene.ErrWrongMode)
}

func TestConnectFlow(t *testing.T) {
	s := newScene(t)
	s.SetMode(scene.ModeConnect)

	require.NoError(t, s.ClickNode(3))
	l1, l2 := s.Legs()
	require.Equal(t, 3, l1)
	require.Equal(t, scene.NoNode, l2)

	// a click without a proposed second leg does nothing
	require.NoError(t, s.ClickNode(4))
	require.Len(t, s.Edges(), 7)

	// leg 1 itself and existing neighbors are not proposed
	require.NoError(t, s.HoverNode(3))
	require.NoError(t, s.HoverNode(2))
	_, l2 = s.Legs()
	require.Equal(t, scene.NoNode, l2)

	require.NoError(t, s.HoverNode(4))
	_, l2 = s.Legs()
	require.Equal(t, 4, l2)
	s.LeaveNode()
	_, l2 = s.Legs()
	require.Equal(t, scene.NoNode, l2)

	require.NoError(t, s.HoverNode(4))
	require.NoError(t, s.ClickNode(4))
	require.Len(t, s.Edges(), 8)
	require.Equal(t, core.NewEdge(3, 4), s.Edges()[7])
	require.Contains(t, s.Connections().Neighbors(3), 4)
	require.True(t, s.Matrix().Has(4, 3))
	l1, l2 = s.Legs()
	require.Equal(t, scene.NoNode, l1)
	require.Equal(t, scene.NoNode, l2)

	require.ErrorIs(t, s.HoverNode(-1), scene.ErrUnknownNode)
}

func TestSetMode_ClearsLegs(t *testing.T) {
	s := newScene(t)
	s.SetMode(scene.ModeConnect)
	require.NoError(t, s.ClickNode(0))
	require.NoError(t, s.HoverNode(6))
	s.SetMode(scene.ModeConnect)
	l1, l2 := s.Legs()
	require.Equal(t, scene.NoNode, l1)
	require.Equal(t, scene.NoNode, l2)
}

func TestClickNode_WrongMode(t *testing.T) {
	s := newScene(t)
	require.ErrorIs(t, s.ClickNode(1), scene.ErrWrongMode)
	s.SetMode(scene.ModeAdd)
	require.ErrorIs(t, s.ClickNode(1), scene.ErrWrongMode)
	require.ErrorIs(t, s.ClickNode(70), scene.ErrUnknownNode)
}

func TestSetStartAndGoal(t *testing.T) {
	s := newScene(t)
	s.Next()

	s.SetMode(scene.ModeSetStart)
	require.NoError(t, s.ClickNode(2))
	require.Equal(t, 2, s.Start())
	require.Equal(t, []core.Path{{2}}, s.Stepper().Queue())

	s.Next()
	s.SetMode(scene.ModeSetEnd)
	require.NoError(t, s.ClickNode(5))
	require.Equal(t, 5, s.Goal())
	require.Equal(t, []core.Path{{2}}, s.Stepper().Queue())

	drain(s, 50)
	require.Equal(t, core.Path{2, 3, 5}, s.GoalPath())
}

func TestRemoveEdge(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.RemoveEdge(core.NewEdge(4, 1)))
	require.Len(t, s.Edges(), 6)
	require.False(t, s.Matrix().Has(1, 4))

	r := drain(s, 50)
	require.NotEqual(t, bfs.OutcomeGoal, r.Outcome)
	require.True(t, s.Stepper().Exhausted())

	require.ErrorIs(t, s.RemoveEdge(core.NewEdge(0, 9)), matrix.ErrInvalidVertex)
}

func TestRemoveEdge_Deduplicates(t *testing.T) {
	l := builder.Layout{
		Nodes: []builder.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		Edges: core.EdgesFromPairs([][2]int{{1, 2}, {0, 1}, {1, 0}, {1, 2}}),
	}
	s := newScene(t, scene.WithLayout(l), scene.WithGoal(2))
	require.NoError(t, s.RemoveEdge(core.NewEdge(0, 2)))
	require.Equal(t, core.EdgesFromPairs([][2]int{{0, 1}, {1, 2}}), s.Edges())
}

func TestBulkEdits(t *testing.T) {
	s := newScene(t)
	s.ConnectAll()
	require.Len(t, s.Edges(), 7*8/2)
	require.Equal(t, core.NewEdge(0, 0), s.Edges()[0])

	s.DisconnectAll()
	require.Empty(t, s.Edges())

	s.Reset()
	r := s.Next()
	require.Equal(t, bfs.OutcomeDeadEnd, r.Outcome)
}

func TestEdits_KeepTraversal(t *testing.T) {
	s := newScene(t)
	s.Next()
	s.Next()
	before := s.Stepper().Queue()

	s.SetMode(scene.ModeAdd)
	_, err := s.AddNode(builder.Point{X: 9, Y: 9})
	require.NoError(t, err)
	require.Equal(t, before, s.Stepper().Queue())
	require.Equal(t, 2, s.Stepper().Steps())
}

func TestReset(t *testing.T) {
	s := newScene(t)
	s.SetMode(scene.ModeConnect)
	require.NoError(t, s.ClickNode(1))
	s.Next()

	s.Reset()
	require.Equal(t, scene.ModeMove, s.Mode())
	l1, _ := s.Legs()
	require.Equal(t, scene.NoNode, l1)
	require.Equal(t, []core.Path{{0}}, s.Stepper().Queue())
	require.Empty(t, s.Stepper().Visited())
}

func TestLoadPreset(t *testing.T) {
	s := newScene(t)
	s.Next()

	require.NoError(t, s.LoadPreset(builder.GridKind, builder.WithGridSize(5)))
	require.Equal(t, 25, s.NodeCount())
	require.Equal(t, []core.Path{{0}}, s.Stepper().Queue())
	require.Equal(t, 6, s.Goal())

	r := drain(s, 200)
	require.Equal(t, bfs.OutcomeGoal, r.Outcome)
	require.True(t, r.Path.Ends(6))

	require.ErrorIs(t, s.LoadPreset(builder.GridKind, builder.WithGridSize(0)), builder.ErrTooFewVertices)
	require.Equal(t, 25, s.NodeCount())
}

func TestHitTests(t *testing.T) {
	s := newScene(t)

	i, ok := s.NodeAt(builder.Point{X: 1.2, Y: 1.1}, 0.5)
	require.True(t, ok)
	require.Equal(t, 0, i)
	_, ok = s.NodeAt(builder.Point{X: 2.5, Y: 1}, 0.5)
	require.False(t, ok)

	e, ok := s.EdgeAt(builder.Point{X: 2.5, Y: 1.1}, 0.2)
	require.True(t, ok)
	require.Equal(t, core.NewEdge(0, 1), e)
	_, ok = s.EdgeAt(builder.Point{X: 12, Y: 12}, 0.2)
	require.False(t, ok)
}

func TestModeNames(t *testing.T) {
	for _, m := range scene.Modes() {
		got, err := scene.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := scene.ParseMode("fly")
	require.ErrorIs(t, err, scene.ErrWrongMode)
	require.Equal(t, "Mode(9)", scene.Mode(9).String())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { scene.WithStart(-1) })
	require.Panics(t, func() { scene.WithGoal(-1) })
}

func TestSetEndpoints(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.SetStart(3))
	require.NoError(t, s.SetGoal(4))
	require.Equal(t, []core.Path{{3}}, s.Stepper().Queue())
	require.Equal(t, 4, s.Stepper().Goal())
	require.ErrorIs(t, s.SetStart(7), scene.ErrUnknownNode)
	require.ErrorIs(t, s.SetGoal(-2), scene.ErrUnknownNode)
	require.Equal(t, 3, s.Start())
}
