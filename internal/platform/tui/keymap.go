package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// KeyMap defines the key bindings of the clock view.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Color      key.Binding
	Brightness key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Color: key.NewBinding(
			key.WithKeys("c", "right", "l"),
			key.WithHelp("c", "next color"),
		),
		Brightness: key.NewBinding(
			key.WithKeys("b", "up", "k"),
			key.WithHelp("b", "brightness"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Brightness, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Color, k.Brightness},
		{k.Help, k.Quit},
	}
}

// Action translates a key message to an operator action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Color):
		return core.ActionCycleColor
	case key.Matches(msg, k.Brightness):
		return core.ActionCycleBrightness
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// requestFor maps palette actions to engine requests.
func requestFor(a core.Action) (clock.Request, bool) {
	switch a {
	case core.ActionCycleColor:
		return clock.RequestCycleColor, true
	case core.ActionCycleBrightness:
		return clock.RequestCycleBrightness, true
	}
	return 0, false
}
