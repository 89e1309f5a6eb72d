// SPDX-License-Identifier: MIT

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/driver"
	"github.com/katalvlaran/bfsviz/render"
	"github.com/katalvlaran/bfsviz/scene"
	"go.uber.org/zap"
)

// =============================================================================
// Messages
// =============================================================================

// GraphReloadedMsg carries a config reloaded from disk.
type GraphReloadedMsg struct {
	Config *config.Config
	Err    error
}

// tickMsg advances a play run; gen discards ticks from a stopped run.
type tickMsg struct{ gen int }

// =============================================================================
// Options
// =============================================================================

// Option configures New.
type Option func(*Model)

// WithInterval sets the play step period.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithLabels sets node labels.
func WithLabels(labels []string) Option {
	return func(m *Model) {
		if len(labels) > 0 {
			m.labels = labels
		}
	}
}

// WithPreset records which preset the scene shows, for the +/- keys.
func WithPreset(kind builder.Kind, gridSize, treeDepth int) Option {
	return func(m *Model) {
		m.preset, m.gridSize, m.treeDepth = kind, gridSize, treeDepth
	}
}

// WithOnStep registers a callback run after every step.
func WithOnStep(fn func(bfs.StepResult)) Option {
	return func(m *Model) {
		if fn != nil {
			m.onStep = fn
		}
	}
}

// WithLogger sets the model logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// =============================================================================
// Model
// =============================================================================

const (
	panelWidth    = 32
	defaultWidth  = 100
	defaultHeight = 30
	chromeHeight  = 4
)

// Model is the bubbletea model for the interactive viewer.
type Model struct {
	scene *scene.Scene
	keys  keyMap
	help  help.Model

	canvas   render.Canvas
	labels   []string
	interval time.Duration
	onStep   func(bfs.StepResult)
	log      *zap.Logger

	preset    builder.Kind
	gridSize  int
	treeDepth int

	width, height int
	col, row      int
	grabbed       int

	playing  bool
	gen      int
	status   string
	quitting bool
}

// New returns a Model over s.
func New(s *scene.Scene, opts ...Option) Model {
	m := Model{
		scene:     s,
		keys:      defaultKeys(),
		help:      help.New(),
		labels:    render.DefaultLabels,
		interval:  driver.DefaultInterval,
		onStep:    func(bfs.StepResult) {},
		log:       zap.NewNop(),
		preset:    builder.MIT,
		gridSize:  builder.DefaultGridSize,
		treeDepth: builder.DefaultTreeDepth,
		width:     defaultWidth,
		height:    defaultHeight,
		grabbed:   scene.NoNode,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refit()
	return m
}

// Scene returns the scene the model edits.
func (m Model) Scene() *scene.Scene { return m.scene }

// Playing reports whether a play run is active.
func (m Model) Playing() bool { return m.playing }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refit()
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case GraphReloadedMsg:
		return m.handleReload(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) refit() {
	w := m.width - panelWidth
	if w < 10 {
		w = 10
	}
	h := m.height - chromeHeight
	if h < 5 {
		h = 5
	}
	c := render.Fit(w, h, m.scene.Nodes())
	c.Labels = m.labels
	m.canvas = c
	m.clampCursor()
}

func (m *Model) clampCursor() {
	m.col = clamp(m.col, 0, m.canvas.Width-1)
	m.row = clamp(m.row, 0, m.canvas.Height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// =============================================================================
// Play
// =============================================================================

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) startPlay() (Model, tea.Cmd) {
	if m.scene.Stepper().Reached() {
		return m, nil
	}
	m.playing = true
	m.gen++
	return m, m.tick()
}

func (m Model) stopPlay() Model {
	m.playing = false
	m.gen++
	return m
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.playing || msg.gen != m.gen {
		return m, nil
	}
	r := m.step()
	if r.Outcome == bfs.OutcomeGoal || m.scene.Stepper().Exhausted() {
		return m.stopPlay(), nil
	}
	return m, m.tick()
}

func (m *Model) step() bfs.StepResult {
	r := m.scene.Next()
	m.onStep(r)
	if r.Outcome == bfs.OutcomeGoal {
		m.status = "goal reached in " + itoa(r.Step) + " steps"
	} else {
		m.status = ""
	}
	return r
}

// =============================================================================
// Keys
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m.stopPlay(), tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Play):
		if m.playing {
			return m.stopPlay(), nil
		}
		return m.startPlay()
	case key.Matches(msg, k.Next):
		m.step()
	case key.Matches(msg, k.Reset):
		m = m.stopPlay()
		m.grabbed = scene.NoNode
		m.scene.Reset()
		m.status = ""
	case key.Matches(msg, k.ModeMove):
		m.setMode(scene.ModeMove)
	case key.Matches(msg, k.ModeAdd):
		m.setMode(scene.ModeAdd)
	case key.Matches(msg, k.ModeConnect):
		m.setMode(scene.ModeConnect)
	case key.Matches(msg, k.ModeStart):
		m.setMode(scene.ModeSetStart)
	case key.Matches(msg, k.ModeEnd):
		m.setMode(scene.ModeSetEnd)
	case key.Matches(msg, k.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, k.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, k.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, k.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, k.Act):
		m.act()
	case key.Matches(msg, k.DeleteEdge):
		m.deleteEdge()
	case key.Matches(msg, k.ConnectAll):
		m.scene.ConnectAll()
	case key.Matches(msg, k.DisconnectAll):
		m.scene.DisconnectAll()
	case key.Matches(msg, k.PresetMIT):
		m.loadPreset(builder.MIT)
	case key.Matches(msg, k.PresetGrid):
		m.loadPreset(builder.GridKind)
	case key.Matches(msg, k.PresetTree):
		m.loadPreset(builder.BinaryTreeKind)
	case key.Matches(msg, k.Grow):
		m.resize(1)
	case key.Matches(msg, k.Shrink):
		m.resize(-1)
	}
	return m, nil
}

func (m *Model) setMode(mode scene.Mode) {
	m.grabbed = scene.NoNode
	m.scene.SetMode(mode)
}

func (m *Model) cursorPoint() builder.Point { return m.canvas.Point(m.col, m.row) }

// hitRadius is one cell along the coarser axis, in abstract units.
func (m *Model) hitRadius() float64 {
	r := 1.0
	if m.canvas.ScaleX > 0 {
		r = 1 / m.canvas.ScaleX
	}
	if m.canvas.ScaleY > 0 && 1/m.canvas.ScaleY > r {
		r = 1 / m.canvas.ScaleY
	}
	return r
}

func (m *Model) nodeUnderCursor() (int, bool) {
	return m.scene.NodeAt(m.cursorPoint(), m.hitRadius())
}

func (m *Model) moveCursor(dc, dr int) {
	m.col += dc
	m.row += dr
	m.clampCursor()

	switch m.scene.Mode() {
	case scene.ModeMove:
		if m.grabbed != scene.NoNode {
			m.report(m.scene.MoveNode(m.grabbed, m.cursorPoint()))
		}
	case scene.ModeConnect:
		if i, ok := m.nodeUnderCursor(); ok {
			m.report(m.scene.HoverNode(i))
		} else {
			m.scene.LeaveNode()
		}
	}
}

// act is the keyboard stand-in for a click at the cursor.
func (m *Model) act() {
	switch m.scene.Mode() {
	case scene.ModeAdd:
		_, err := m.scene.AddNode(m.cursorPoint())
		m.report(err)
		return
	case scene.ModeMove:
		if m.grabbed != scene.NoNode {
			m.grabbed = scene.NoNode
			return
		}
		if i, ok := m.nodeUnderCursor(); ok {
			m.grabbed = i
		}
		return
	}

	i, ok := m.nodeUnderCursor()
	if !ok {
		return
	}
	if m.scene.Mode() == scene.ModeConnect {
		if first, _ := m.scene.Legs(); first != scene.NoNode {
			m.report(m.scene.HoverNode(i))
		}
	}
	m.report(m.scene.ClickNode(i))
}

func (m *Model) deleteEdge() {
	if e, ok := m.scene.EdgeAt(m.cursorPoint(), m.hitRadius()); ok {
		m.report(m.scene.RemoveEdge(e))
	}
}

func (m *Model) loadPreset(kind builder.Kind) {
	err := m.scene.LoadPreset(kind,
		builder.WithGridSize(m.gridSize), builder.WithTreeDepth(m.treeDepth))
	if m.report(err) {
		return
	}
	m.preset = kind
	m.grabbed = scene.NoNode
	*m = m.stopPlay()
	m.refit()
}

func (m *Model) resize(delta int) {
	switch m.preset {
	case builder.GridKind:
		m.gridSize = clamp(m.gridSize+delta, builder.MinSelectableGridSize, builder.MaxSelectableGridSize)
	case builder.BinaryTreeKind:
		m.treeDepth = clamp(m.treeDepth+delta, builder.MinTreeDepth, builder.MaxSelectableTreeDepth)
	default:
		return
	}
	m.loadPreset(m.preset)
}

// report shows err in the status line and tells whether there was one.
func (m *Model) report(err error) bool {
	if err == nil {
		return false
	}
	m.status = err.Error()
	m.log.Debug("tui action failed", zap.Error(err))
	return true
}

func (m Model) handleReload(msg GraphReloadedMsg) Model {
	if msg.Err != nil {
		m.status = "reload: " + msg.Err.Error()
		return m
	}
	cfg := msg.Config
	l, err := cfg.Resolve()
	if m.report(err) {
		return m
	}
	m = m.stopPlay()
	if m.report(m.scene.LoadLayout(l)) {
		return m
	}
	m.report(m.scene.SetStart(cfg.Start))
	m.report(m.scene.SetGoal(cfg.Goal))
	if len(cfg.Labels) > 0 {
		m.labels = cfg.Labels
	}
	if cfg.Interval > 0 {
		m.interval = cfg.Interval.Std()
	}
	if kind, err := builder.ParseKind(cfg.Preset.Kind); err == nil && cfg.Graph == nil {
		m.preset = kind
		if cfg.Preset.GridSize > 0 {
			m.gridSize = cfg.Preset.GridSize
		}
		m.treeDepth = cfg.Preset.TreeDepth
	}
	m.grabbed = scene.NoNode
	m.refit()
	m.status = "graph reloaded"
	return m
}
