package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, km.Up},
		{"W", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, km.Up},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, km.Down},
		{"S", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'S'}}, km.Down},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, km.Start},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.Start},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q should match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}

	if key.Matches(tea.KeyMsg{Type: tea.KeyUp}, km.Down) {
		t.Error("up arrow should not match the down binding")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", got)
	}
	if got := km.Up.Help().Desc; got != "move up" {
		t.Errorf("Up help = %q, expected %q", got, "move up")
	}
}
