// Package cell provides a raw tcell frontend for poles with optional sound.
package cell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/games/poles"
	"github.com/vovakirdan/tui-poles/internal/logging"
	"github.com/vovakirdan/tui-poles/internal/registry"
)

// FrontendID is the registry ID of the tcell frontend.
const FrontendID = "tcell"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// quitSignal is posted as interrupt data when the context is cancelled.
type quitSignal struct{}

// Frontend runs poles directly on a tcell screen.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "tcell (with sound)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	defer screen.Fini()

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	sound := NewSound(opts.Sound, logger)
	defer sound.Close()

	s, err := newSession(screen, opts, sound, logger)
	if err != nil {
		return err
	}
	defer s.sched.stop()

	stopWatch := watchContext(ctx, screen)
	defer stopWatch()

	s.loop()
	return nil
}

// watchContext posts a quit signal when ctx is cancelled. The returned
// function stops the watcher and waits for it to exit; it must be called
// before the screen is finalized.
func watchContext(ctx context.Context, screen tcell.Screen) func() {
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
		case <-done:
		}
	}()

	return func() {
		close(done)
		<-exited
	}
}

// session owns one engine bound to a tcell screen.
type session struct {
	screen tcell.Screen
	engine *poles.Engine
	board  *poles.Board
	sched  *eventScheduler
	buf    *core.Screen
	logger *log.Logger
}

func newSession(screen tcell.Screen, opts registry.RunOptions, fx Effects, logger *log.Logger) (*session, error) {
	seed := opts.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cols, _ := screen.Size()
	width := poles.LaneWidth(cols)
	board := poles.NewBoard(width, opts.Theme)
	sched := newEventScheduler(screen)

	engine, err := poles.New(width, &soundSink{Board: board, fx: fx}, sched,
		poles.WithLogger(logger),
		poles.WithSource(poles.NewSource(seed)),
	)
	if err != nil {
		return nil, fmt.Errorf("cell: %w", err)
	}

	return &session{
		screen: screen,
		engine: engine,
		board:  board,
		sched:  sched,
		buf:    core.NewScreen(board.Size()),
		logger: logger,
	}, nil
}

// loop draws and dispatches events until the player quits.
func (s *session) loop() {
	s.screen.HideCursor()
	for {
		s.draw()
		ev := s.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}
		if !s.handle(ev) {
			return
		}
	}
}

// handle processes one event. Returns false to end the session.
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.apply(core.ActionForKey(keyName(ev.Key(), ev.Rune())))
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case func():
			data()
		case quitSignal:
			return false
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// apply performs an action. Returns false for quit.
func (s *session) apply(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return false
	case core.ActionStart:
		if !s.engine.Running() {
			s.board.SetInfoVisible(false)
			s.engine.Start(func() {
				s.board.SetInfoVisible(true)
			})
		}
	case core.ActionUp:
		s.engine.MoveUp()
	case core.ActionDown:
		s.engine.MoveDown()
	}
	return true
}

// draw copies the board onto the tcell screen with a help footer.
func (s *session) draw() {
	s.board.Draw(s.buf)
	s.screen.Clear()

	for y := range s.buf.Height() {
		for x := range s.buf.Width() {
			c := s.buf.GetCell(x, y)
			s.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}

	footer := helpLine()
	style := styleFor(core.ColorGray)
	for i, r := range []rune(footer) {
		s.screen.SetContent(i, s.buf.Height(), r, nil, style)
	}

	s.screen.Show()
}

// keyName maps a tcell key to the key names used by core.DefaultBindings.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}

// styleFor converts a core color to a tcell style.
func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// helpLine renders the bindings as a single footer line.
func helpLine() string {
	parts := make([]string, 0, len(core.DefaultBindings))
	for _, b := range core.DefaultBindings {
		parts = append(parts, b.Label+" "+b.Help)
	}
	return strings.Join(parts, " • ")
}

// soundSink forwards frames to the board and plays cues on score and crash.
type soundSink struct {
	*poles.Board
	fx Effects
}

// ScoreChanged plays the score cue when the displayed score rises.
func (s *soundSink) ScoreChanged(score int) {
	if score > s.Board.Score() {
		s.fx.Score()
	}
	s.Board.ScoreChanged(score)
}

// GameOver plays the crash cue.
func (s *soundSink) GameOver(score int) {
	s.fx.Crash()
	s.Board.GameOver(score)
}
