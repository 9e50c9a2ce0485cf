// Package tui provides the Bubble Tea frontend for poles.
// It bridges engine scheduling onto the program loop, maps keys to engine
// calls and renders the board with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries a scheduled engine callback back onto the program loop.
type tickMsg struct {
	fn func()
}

// teaScheduler implements poles.Scheduler on top of tea.Tick.
// Callbacks requested during an Update are collected and returned as one
// command, so the engine only ever runs on the Bubble Tea goroutine.
type teaScheduler struct {
	pending []tea.Cmd
}

// AfterFunc queues fn to be delivered as a tickMsg after d.
func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{fn: fn}
	}))
}

// drain returns the queued ticks as a single command, or nil.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
