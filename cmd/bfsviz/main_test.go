// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_MITLecture(t *testing.T) {
	out, err := execute(t, "run", "--interval", "1ms", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "  1 expanded (S A)(S B)", lines[0])
	require.Contains(t, out, "  7 goal     (S A D G)")
	require.Contains(t, out, "stopped: goal after 7 steps")
	require.Contains(t, out, "path: (S A D G)")
}

func TestRun_StepLimit(t *testing.T) {
	out, err := execute(t, "run", "-i", "1ms", "-n", "3", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "stopped: limit after 3 steps")
	require.Contains(t, out, "path: -")
}

func TestRun_GridPreset(t *testing.T) {
	out, err := execute(t, "run", "-i", "1ms", "--log-level", "error",
		"--preset", "grid", "--grid-size", "3", "--goal", "8")
	require.NoError(t, err)
	require.Contains(t, out, "stopped: goal after")
	require.Contains(t, out, "path: (")
}

func TestRun_Unreachable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "split.toml")
	require.NoError(t, os.WriteFile(path, []byte(`start = 0
goal = 2
interval = "1ms"

[graph]
nodes = [[1.0, 1.0], [2.0, 1.0], [3.0, 1.0]]
edges = [[0, 1]]

[log]
level = "error"
`), 0o644))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "stopped: exhausted after 2 steps")
	require.Contains(t, out, "path: unreachable")
}

func TestRun_BadGoal(t *testing.T) {
	_, err := execute(t, "run", "-i", "1ms", "--log-level", "error", "--goal", "99")
	require.Error(t, err)
}

func TestRun_BadPreset(t *testing.T) {
	_, err := execute(t, "run", "--preset", "hexagon")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_MetricsAndDraw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bfsviz.prom")
	out, err := execute(t, "run", "-i", "1ms", "--log-level", "error", "--metrics", path, "--draw")
	require.NoError(t, err)
	require.Contains(t, out, "G")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `bfsviz_steps_total{outcome="goal"} 1`)
	require.Contains(t, string(data), `bfsviz_runs_total{result="goal"} 1`)
	require.Contains(t, string(data), "bfsviz_goal_path_length 4")
	require.Contains(t, string(data), "bfsviz_visited_nodes 7")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`graph:
  nodes: [[1, 1], [2, 1], [3, 1]]
  edges: [[0, 1], [1, 2]]
start: 0
goal: 2
interval: 1ms
labels: [X, Y, Z]
log:
  level: error
`), 0o644))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "path: (X Y Z)")

	// --preset replaces the file's explicit graph
	out, err = execute(t, "run", "--config", path, "--preset", "mit", "--goal", "6")
	require.NoError(t, err)
	require.Contains(t, out, "stopped: goal after 7 steps")
}

func TestMatrix(t *testing.T) {
	out, err := execute(t, "matrix")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "0 1 1 0 0 0 0\n"))
	require.Contains(t, out, "edges: (0,1) (0,2) (1,2) (1,4) (2,3) (3,5) (4,6)\n")
	require.Contains(t, out, "S: A B\n")
	require.Contains(t, out, "G: D\n")
}

func TestExport(t *testing.T) {
	out, err := execute(t, "export")
	require.NoError(t, err)
	require.Contains(t, out, "graph:")

	cfg, err := config.Parse([]byte(out), config.YAML)
	require.NoError(t, err)
	require.Len(t, cfg.Graph.Nodes, 7)
	require.Len(t, cfg.Graph.Edges, 7)

	path := filepath.Join(t.TempDir(), "tree.toml")
	_, err = execute(t, "export", path, "--preset", "binary-tree", "--tree-depth", "2")
	require.NoError(t, err)
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Graph.Nodes, 7)
	require.Len(t, cfg.Graph.Edges, 6)

	_, err = execute(t, "export", "--format", "ini")
	require.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	require.Contains(t, out, "mit             7 nodes    7 edges")
	require.Contains(t, out, "grid sizes:  [5 6 7 8 9 10]")
	require.Contains(t, out, "tree depths: [0 1 2 3 4 5]")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "bfsviz dev\n", out)
}

func TestTUI_WatchNeedsConfig(t *testing.T) {
	_, err := execute(t, "tui", "--watch")
	require.Error(t, err)
}
