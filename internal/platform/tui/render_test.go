package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

func TestRenderBoardText(t *testing.T) {
	screen := core.NewScreen(2, 3)
	screen.SetText(0, 0, "A")
	screen.SetText(0, 1, "B'")
	screen.SetText(0, 2, "C")
	screen.SetText(1, 0, "D")
	screen.SetText(1, 1, "E")
	screen.SetText(1, 2, "F")
	screen.SetCellColor(0, 1, 0xFF0000)

	got := ansi.Strip(RenderBoard(screen))
	want := "A  B' C\nD  E  F"
	if got != want {
		t.Errorf("RenderBoard() = %q, want %q", got, want)
	}
}

func TestStyleCacheReuses(t *testing.T) {
	cache := &styleCache{styles: make(map[core.Color]lipgloss.Style)}
	cache.get(0x123456)
	cache.get(0x123456)
	cache.get(core.ColorBaseline)
	if len(cache.styles) != 2 {
		t.Errorf("cache has %d styles, want 2", len(cache.styles))
	}
}

func TestRenderStatus(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name   string
		status clock.Status
		want   []string
	}{
		{
			name:   "idle",
			status: clock.Status{Palette: clock.PaletteState{ColorIndex: 3, Brightness: clock.BrightnessDim}},
			want:   []string{"color violet", "brightness dim"},
		},
		{
			name:   "fading with queue",
			status: clock.Status{Busy: true, Pending: 2},
			want:   []string{"fading, 2 queued"},
		},
		{
			name:   "clock error",
			status: clock.Status{LastErr: errors.New("boom")},
			want:   []string{"clock unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(renderStatus(tt.status, theme))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("renderStatus() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText() = %q, want %q", got, "   abc")
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() = %q, want unchanged", got)
	}
}
