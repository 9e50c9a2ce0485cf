package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/games/poles"
	"github.com/vovakirdan/tui-poles/internal/logging"
	"github.com/vovakirdan/tui-poles/internal/registry"
)

// FrontendID is the registry ID of the Bubble Tea frontend.
const FrontendID = "tui"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend runs poles as a Bubble Tea program on the local terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Bubble Tea" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return err
}

// Model is the Bubble Tea model for one poles session.
// The engine and board are shared by pointer across model copies.
type Model struct {
	engine *poles.Engine
	board  *poles.Board
	sched  *teaScheduler
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	quitting bool
}

// NewModel creates a session model. The lane width is derived from
// opts.Config.ScreenW; a zero seed is replaced with the current time.
func NewModel(opts registry.RunOptions) (Model, error) {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	width := poles.LaneWidth(cfg.ScreenW)
	board := poles.NewBoard(width, opts.Theme)
	sched := &teaScheduler{}

	engine, err := poles.New(width, board, sched,
		poles.WithLogger(logger),
		poles.WithSource(poles.NewSource(cfg.Seed)),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	w, h := board.Size()
	return Model{
		engine: engine,
		board:  board,
		sched:  sched,
		screen: core.NewScreen(w, h),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}, nil
}

// Init implements tea.Model. Nothing runs until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		msg.fn()
		return m, m.sched.drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Up):
		m.engine.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.engine.MoveDown()
	}
	return m, m.sched.drain()
}

// start hides the info panel and begins a run; the panel returns when it ends.
func (m *Model) start() {
	if m.engine.Running() {
		return
	}
	m.board.SetInfoVisible(false)
	m.engine.Start(func() {
		m.board.SetInfoVisible(true)
	})
}

// Engine returns the session's engine.
func (m Model) Engine() *poles.Engine {
	return m.engine
}

// Board returns the session's board.
func (m Model) Board() *poles.Board {
	return m.board
}

// View renders the board and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Draw(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
