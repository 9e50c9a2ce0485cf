package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-poles/internal/core"
)

// KeyMap defines the key bindings for a poles session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap builds the key map from core.DefaultBindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    binding(core.ActionUp),
		Down:  binding(core.ActionDown),
		Start: binding(core.ActionStart),
		Quit:  binding(core.ActionQuit),
	}
}

func binding(a core.Action) key.Binding {
	b, ok := core.BindingFor(a)
	if !ok {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Label, b.Help),
	)
}
