package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakebreak/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Every binding except Screenshot resolves to a core.Action.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// actionBindings returns the bindings that map onto simulation actions,
// paired with their action.
func (k KeyMap) actionBindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Quit, core.ActionQuit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for keys with no simulation meaning.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range k.actionBindings() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame adds the action for a key message to an input frame.
// Several keys pressed within one tick accumulate in the same frame.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action
}
