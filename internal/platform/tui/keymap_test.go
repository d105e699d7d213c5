package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"c cycles color", runeKey('c'), core.ActionCycleColor},
		{"right cycles color", tea.KeyMsg{Type: tea.KeyRight}, core.ActionCycleColor},
		{"b cycles brightness", runeKey('b'), core.ActionCycleBrightness},
		{"up cycles brightness", tea.KeyMsg{Type: tea.KeyUp}, core.ActionCycleBrightness},
		{"? toggles help", runeKey('?'), core.ActionHelp},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRequestFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   clock.Request
		ok     bool
	}{
		{core.ActionCycleColor, clock.RequestCycleColor, true},
		{core.ActionCycleBrightness, clock.RequestCycleBrightness, true},
		{core.ActionHelp, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		got, ok := requestFor(tt.action)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("requestFor(%v) = %v, %v; want %v, %v", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyMapHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, want 4", len(keys.ShortHelp()))
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 4 {
		t.Errorf("FullHelp() has %d bindings, want 4", n)
	}
}
