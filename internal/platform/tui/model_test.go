package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/games/poles"
	"github.com/vovakirdan/tui-poles/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(registry.RunOptions{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7},
		Theme:  poles.DefaultTheme(),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelLaneWidth(t *testing.T) {
	tests := []struct {
		screenW int
		want    int
	}{
		{80, poles.MaxLaneWidth},
		{30, 14},
		{5, poles.MinLaneWidth},
	}

	for _, tc := range tests {
		m, err := NewModel(registry.RunOptions{
			Config: core.RuntimeConfig{ScreenW: tc.screenW, Seed: 1},
			Theme:  poles.DefaultTheme(),
		})
		if err != nil {
			t.Fatalf("NewModel(%d) failed: %v", tc.screenW, err)
		}
		if got := m.Engine().Width(); got != tc.want {
			t.Errorf("screen %d: lane width = %d, expected %d", tc.screenW, got, tc.want)
		}
	}
}

func TestInitWaitsForStart(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should not schedule anything")
	}
	if m.Engine().Running() {
		t.Error("engine should not run before start")
	}
	if !strings.Contains(m.View(), "P O L E S") {
		t.Error("info panel should be shown before the first run")
	}
}

func TestStartKeyBeginsRun(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeySpace, Runes: []rune{' '}}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(t)

			m, cmd := update(t, m, msg)
			if !m.Engine().Running() {
				t.Fatal("engine should be running after start")
			}
			if m.Board().InfoVisible() {
				t.Error("info panel should be hidden during a run")
			}
			if cmd == nil {
				t.Error("start should schedule the next tick")
			}
			if got := m.Engine().Ticks(); got != 1 {
				t.Errorf("Ticks() = %d, expected 1", got)
			}
		})
	}
}

func TestMoveKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	start := m.Engine().Bird().Y

	tests := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, start - 1},
		{keyRunes('w'), start - 2},
		{keyRunes('W'), start - 3},
		{tea.KeyMsg{Type: tea.KeyDown}, start - 2},
		{keyRunes('s'), start - 1},
		{keyRunes('S'), start},
		{keyRunes('x'), start},
	}

	for _, tc := range tests {
		m, _ = update(t, m, tc.msg)
		if got := m.Engine().Bird().Y; got != tc.want {
			t.Errorf("after %q: bird row = %d, expected %d", tc.msg.String(), got, tc.want)
		}
	}
}

func TestTickMsgRunsCallback(t *testing.T) {
	m := newTestModel(t)

	called := false
	m, _ = update(t, m, tickMsg{fn: func() { called = true }})
	if !called {
		t.Error("tickMsg callback should run during Update")
	}
}

func TestScheduledTickAdvancesEngine(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one scheduled tick, got %d", len(msgs))
	}
	tm, ok := msgs[0].(tickMsg)
	if !ok {
		t.Fatalf("scheduled message is %T, expected tickMsg", msgs[0])
	}

	m, cmd = update(t, m, tm)
	if got := m.Engine().Ticks(); got != 2 {
		t.Errorf("Ticks() = %d, expected 2", got)
	}
	if m.Engine().Running() && cmd == nil {
		t.Error("a running engine should schedule another tick")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes('q'), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		m, cmd := update(t, m, msg)

		msgs := collect(cmd)
		if len(msgs) != 1 {
			t.Fatalf("%q: expected a quit command", msg.String())
		}
		if _, ok := msgs[0].(tea.QuitMsg); !ok {
			t.Errorf("%q: got %T, expected tea.QuitMsg", msg.String(), msgs[0])
		}
		if m.View() != "" {
			t.Errorf("%q: view should be empty after quit", msg.String())
		}
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	for _, want := range []string{"POLES", "Score: 0", "move up", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestTeaSchedulerDrain(t *testing.T) {
	s := &teaScheduler{}
	if s.drain() != nil {
		t.Error("empty scheduler should drain to nil")
	}

	hits := 0
	s.AfterFunc(time.Millisecond, func() { hits++ })
	s.AfterFunc(time.Millisecond, func() { hits += 10 })

	msgs := collect(s.drain())
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	for _, msg := range msgs {
		msg.(tickMsg).fn()
	}
	if hits != 11 {
		t.Errorf("hits = %d, expected 11", hits)
	}
	if s.drain() != nil {
		t.Error("drain should empty the queue")
	}
}
