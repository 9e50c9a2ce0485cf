package core

// Action represents a semantic player intent, abstracted from physical key presses.
// Frontends translate their native key events to key names and look them up here,
// so every frontend shares one set of bindings.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // ArrowUp, w, W - move the bird up one row
	ActionDown         // ArrowDown, s, S - move the bird down one row
	ActionStart        // Enter, Space - start a run from the info panel
	ActionQuit         // q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Binding ties an action to the key names that trigger it.
// Key names follow Bubble Tea's KeyMsg.String() conventions ("up", "enter", " ", "ctrl+c").
type Binding struct {
	Action Action
	Keys   []string
	Label  string // Short key label for help text
	Help   string // Description for help text
}

// DefaultBindings are the key bindings shared by all frontends.
var DefaultBindings = []Binding{
	{Action: ActionUp, Keys: []string{"up", "w", "W"}, Label: "↑/w", Help: "move up"},
	{Action: ActionDown, Keys: []string{"down", "s", "S"}, Label: "↓/s", Help: "move down"},
	{Action: ActionStart, Keys: []string{"enter", " "}, Label: "enter/space", Help: "start"},
	{Action: ActionQuit, Keys: []string{"q", "ctrl+c"}, Label: "q", Help: "quit"},
}

// ActionForKey returns the action bound to the named key, or ActionNone.
func ActionForKey(key string) Action {
	for _, b := range DefaultBindings {
		for _, k := range b.Keys {
			if k == key {
				return b.Action
			}
		}
	}
	return ActionNone
}

// BindingFor returns the binding of the given action.
func BindingFor(a Action) (Binding, bool) {
	for _, b := range DefaultBindings {
		if b.Action == a {
			return b, true
		}
	}
	return Binding{}, false
}
