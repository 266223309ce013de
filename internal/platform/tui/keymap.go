package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap binds terminal keys to logical directions.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Turn   key.Binding
	Up     key.Binding
	Escape key.Binding
	Help   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Turn, k.Escape, k.Help}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.Turn, k.Up},
		{k.Escape, k.Help},
	}
}

// DefaultKeyMap returns the default terminal bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "drop"),
		),
		Turn: key.NewBinding(
			key.WithKeys("up", " ", "x", "k"),
			key.WithHelp("↑/space", "turn"),
		),
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "reserved"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Direction maps a key message to the direction it holds.
// Returns false for keys that are not bound to a direction.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, k.Escape):
		return core.DirEscape, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, true
	case key.Matches(msg, k.Right):
		return core.DirRight, true
	case key.Matches(msg, k.Down):
		return core.DirDown, true
	case key.Matches(msg, k.Turn):
		return core.DirTurn, true
	case key.Matches(msg, k.Up):
		return core.DirUp, true
	}
	return 0, false
}
