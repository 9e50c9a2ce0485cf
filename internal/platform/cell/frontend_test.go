package cell

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/games/poles"
	"github.com/vovakirdan/tui-poles/internal/logging"
	"github.com/vovakirdan/tui-poles/internal/registry"
)

type recordingFX struct {
	scores  int
	crashes int
}

func (r *recordingFX) Score() { r.scores++ }
func (r *recordingFX) Crash() { r.crashes++ }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyUp, 0, core.ActionUp},
		{tcell.KeyRune, 'w', core.ActionUp},
		{tcell.KeyRune, 'W', core.ActionUp},
		{tcell.KeyDown, 0, core.ActionDown},
		{tcell.KeyRune, 's', core.ActionDown},
		{tcell.KeyRune, 'S', core.ActionDown},
		{tcell.KeyEnter, 0, core.ActionStart},
		{tcell.KeyRune, ' ', core.ActionStart},
		{tcell.KeyRune, 'q', core.ActionQuit},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
		{tcell.KeyRune, 'x', core.ActionNone},
		{tcell.KeyLeft, 0, core.ActionNone},
	}

	for _, tc := range tests {
		if got := core.ActionForKey(keyName(tc.key, tc.r)); got != tc.want {
			t.Errorf("key %v rune %q: action = %v, expected %v", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should map to the default style")
	}
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(2))
	if styleFor(core.ColorGreen) != want {
		t.Error("green should map to palette color 2")
	}
}

func TestHelpLine(t *testing.T) {
	line := helpLine()
	for _, want := range []string{"move up", "move down", "start", "quit"} {
		if !strings.Contains(line, want) {
			t.Errorf("help line should contain %q: %q", want, line)
		}
	}
}

func TestSoundSinkCues(t *testing.T) {
	fx := &recordingFX{}
	sink := &soundSink{Board: poles.NewBoard(8, poles.DefaultTheme()), fx: fx}

	sink.ScoreChanged(0)
	sink.ScoreChanged(1)
	sink.ScoreChanged(1)
	sink.ScoreChanged(2)
	if fx.scores != 2 {
		t.Errorf("score cues = %d, expected 2", fx.scores)
	}
	if sink.Score() != 2 {
		t.Errorf("board score = %d, expected 2", sink.Score())
	}

	sink.GameOver(2)
	if fx.crashes != 1 {
		t.Errorf("crash cues = %d, expected 1", fx.crashes)
	}

	// A new run resets to zero without a cue
	sink.ScoreChanged(0)
	if fx.scores != 2 {
		t.Errorf("reset should not play a cue, got %d cues", fx.scores)
	}
}

func TestToneLength(t *testing.T) {
	st := tone(440, 10*time.Millisecond, 0.5)
	if st == nil {
		t.Fatal("tone() returned nil")
	}

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := st.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(10 * time.Millisecond); total != want {
		t.Errorf("tone produced %d samples, expected %d", total, want)
	}
}

func TestDisabledSoundIsSilent(t *testing.T) {
	s := NewSound(false, logging.Discard())
	s.Score()
	s.Crash()
	s.Close()
}

func TestEventSchedulerPostsInterrupt(t *testing.T) {
	screen := newSimScreen(t)
	sched := newEventScheduler(screen)
	defer sched.stop()

	called := false
	sched.AfterFunc(time.Millisecond, func() { called = true })

	for range 10 {
		ev := screen.PollEvent()
		if ev == nil {
			t.Fatal("event queue closed")
		}
		if intr, ok := ev.(*tcell.EventInterrupt); ok {
			fn, ok := intr.Data().(func())
			if !ok {
				t.Fatalf("interrupt data is %T, expected func()", intr.Data())
			}
			fn()
			break
		}
	}
	if !called {
		t.Error("scheduled callback should arrive as an interrupt")
	}
}

// pollCallback drains the screen's queue until a callback interrupt arrives
// or the timeout passes. Other events are discarded.
func pollCallback(t *testing.T, screen tcell.Screen, timeout time.Duration) (func(), bool) {
	t.Helper()
	found := make(chan func(), 1)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if intr, ok := ev.(*tcell.EventInterrupt); ok {
				if fn, ok := intr.Data().(func()); ok {
					found <- fn
					return
				}
			}
		}
	}()

	select {
	case fn := <-found:
		return fn, true
	case <-time.After(timeout):
		return nil, false
	}
}

func TestEventSchedulerWaitsForFullQueue(t *testing.T) {
	screen := newSimScreen(t)
	sched := newEventScheduler(screen)
	defer sched.stop()

	// Fill the event queue so a non-blocking post would be dropped
	filled := 0
	for filled < 10000 && screen.PostEvent(tcell.NewEventInterrupt(nil)) == nil {
		filled++
	}

	called := false
	sched.AfterFunc(time.Millisecond, func() { called = true })
	time.Sleep(50 * time.Millisecond)

	fn, ok := pollCallback(t, screen, 2*time.Second)
	if !ok {
		t.Fatalf("tick was lost behind %d queued events", filled)
	}
	fn()
	if !called {
		t.Error("delivered interrupt should carry the scheduled callback")
	}
}

func TestEngineKeepsTickingWithBusyQueue(t *testing.T) {
	screen := newSimScreen(t)

	s, err := newSession(screen, registry.RunOptions{
		Config: core.RuntimeConfig{Seed: 5},
		Theme:  poles.DefaultTheme(),
	}, &recordingFX{}, logging.Discard())
	if err != nil {
		t.Fatalf("newSession() failed: %v", err)
	}
	defer s.sched.stop()

	s.apply(core.ActionStart)
	for i := 0; i < 10000 && screen.PostEvent(tcell.NewEventInterrupt(nil)) == nil; i++ {
	}
	time.Sleep(poles.InitialSpeed + 100*time.Millisecond)

	fn, ok := pollCallback(t, screen, 2*time.Second)
	if !ok {
		t.Fatal("second tick never arrived")
	}
	fn()
	if got := s.engine.Ticks(); got != 2 {
		t.Errorf("Ticks() = %d, expected 2", got)
	}
}

func TestWatchContext(t *testing.T) {
	t.Run("cancel posts quit", func(t *testing.T) {
		screen := newSimScreen(t)
		ctx, cancel := context.WithCancel(context.Background())
		stop := watchContext(ctx, screen)
		defer stop()

		cancel()
		for range 100 {
			ev := screen.PollEvent()
			if ev == nil {
				t.Fatal("event queue closed")
			}
			if intr, ok := ev.(*tcell.EventInterrupt); ok {
				if _, ok := intr.Data().(quitSignal); ok {
					return
				}
			}
		}
		t.Error("cancelling the context should post a quit signal")
	})

	t.Run("stop without cancel", func(t *testing.T) {
		screen := newSimScreen(t)
		stop := watchContext(context.Background(), screen)

		returned := make(chan struct{})
		go func() {
			stop()
			close(returned)
		}()
		select {
		case <-returned:
		case <-time.After(time.Second):
			t.Fatal("watcher should exit when stopped")
		}
	})
}

func TestEventSchedulerStop(t *testing.T) {
	screen := newSimScreen(t)
	sched := newEventScheduler(screen)

	sched.AfterFunc(time.Hour, func() {})
	sched.stop()
	if len(sched.timers) != 0 {
		t.Errorf("stop should clear pending timers, %d left", len(sched.timers))
	}

	sched.AfterFunc(time.Millisecond, func() {})
	if len(sched.timers) != 0 {
		t.Error("AfterFunc after stop should be ignored")
	}
}

func TestSessionActions(t *testing.T) {
	screen := newSimScreen(t)
	fx := &recordingFX{}

	s, err := newSession(screen, registry.RunOptions{
		Config: core.RuntimeConfig{Seed: 3},
		Theme:  poles.DefaultTheme(),
	}, fx, logging.Discard())
	if err != nil {
		t.Fatalf("newSession() failed: %v", err)
	}
	defer s.sched.stop()

	if got := s.engine.Width(); got != poles.MaxLaneWidth {
		t.Errorf("lane width = %d, expected %d for 80 columns", got, poles.MaxLaneWidth)
	}

	if !s.apply(core.ActionStart) {
		t.Fatal("start should not end the session")
	}
	if !s.engine.Running() || s.board.InfoVisible() {
		t.Error("start should begin a run and hide the info panel")
	}

	y := s.engine.Bird().Y
	s.apply(core.ActionUp)
	if got := s.engine.Bird().Y; got != y-1 {
		t.Errorf("bird row = %d, expected %d", got, y-1)
	}
	s.apply(core.ActionDown)
	if got := s.engine.Bird().Y; got != y {
		t.Errorf("bird row = %d, expected %d", got, y)
	}

	s.draw()

	if s.apply(core.ActionQuit) {
		t.Error("quit should end the session")
	}
}

func TestSessionHandleQuitSignal(t *testing.T) {
	screen := newSimScreen(t)

	s, err := newSession(screen, registry.RunOptions{Theme: poles.DefaultTheme()}, &recordingFX{}, logging.Discard())
	if err != nil {
		t.Fatalf("newSession() failed: %v", err)
	}
	defer s.sched.stop()

	ran := false
	if !s.handle(tcell.NewEventInterrupt(func() { ran = true })) || !ran {
		t.Error("callback interrupts should run and keep the session alive")
	}
	if s.handle(tcell.NewEventInterrupt(quitSignal{})) {
		t.Error("quit signal should end the session")
	}
}
