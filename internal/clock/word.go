package clock

import (
	"context"
	"strings"

	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// Fade constants. Channels move from the baseline level toward a tier
// level at a fixed rate per frame; full and off tiers land exactly on the
// last frame, the dim tier does not and is clamped.
const (
	fadeFrames = 51

	levelFull = 0xFF
	levelDim  = 0xAA
	levelBase = 0x33

	rateFull = 4
	rateDim  = 2
	rateOff  = 1
)

// tier classifies a channel value of a palette color.
type tier int

const (
	tierOff tier = iota
	tierDim
	tierFull
)

func channelTier(v uint8) tier {
	switch v {
	case levelFull:
		return tierFull
	case levelDim:
		return tierDim
	default:
		return tierOff
	}
}

// fadeInChannel is the channel value after step frames of a fade toward target.
func fadeInChannel(target uint8, step int) int {
	switch channelTier(target) {
	case tierFull:
		return levelBase + rateFull*step
	case tierDim:
		return levelBase + rateDim*step
	default:
		return levelBase - rateOff*step
	}
}

// fadeOutChannel is the channel value after step frames of a fade away from `from`.
func fadeOutChannel(from uint8, step int) int {
	switch channelTier(from) {
	case tierFull:
		return levelFull - rateFull*step
	case tierDim:
		return levelDim - rateDim*step
	default:
		return rateOff * step
	}
}

// fadeInColor returns the color shown on frame step (1..fadeFrames) of a fade-in.
// The last frame is always exactly target.
func fadeInColor(target core.Color, step int) core.Color {
	if step >= fadeFrames {
		return target
	}
	ch := target.Channels()
	c, ok := core.ColorFromChannels(
		fadeInChannel(ch[0], step),
		fadeInChannel(ch[1], step),
		fadeInChannel(ch[2], step),
	)
	if !ok {
		return core.ColorWhite
	}
	return c
}

// fadeOutColor returns the color shown on frame step (1..fadeFrames) of a fade-out.
// The last frame is always exactly the baseline.
func fadeOutColor(from core.Color, step int) core.Color {
	if step >= fadeFrames {
		return core.ColorBaseline
	}
	ch := from.Channels()
	c, ok := core.ColorFromChannels(
		fadeOutChannel(ch[0], step),
		fadeOutChannel(ch[1], step),
		fadeOutChannel(ch[2], step),
	)
	if !ok {
		return core.ColorBaseline
	}
	return c
}

// Word is a group of cells that are always lit or unlit together.
// Its active flag is authoritative: in the "off" brightness tier an active
// word has the baseline color but still reads active.
type Word struct {
	name   string
	cells  []*Cell
	active bool
}

// NewWord groups cells into a word.
func NewWord(name string, cells ...*Cell) *Word {
	return &Word{name: name, cells: cells}
}

// Name returns the word as printed on the grid.
func (w *Word) Name() string { return w.name }

// Cells returns the member cells in order.
func (w *Word) Cells() []*Cell { return w.cells }

// Active reports whether the word's last completed fade was a fade-in.
func (w *Word) Active() bool { return w.active }

// String implements fmt.Stringer.
func (w *Word) String() string { return w.name }

// FadeIn animates the word from the baseline to target. No-op if already active.
// If ctx is cancelled mid-fade the word snaps to target and still ends active.
func (w *Word) FadeIn(ctx context.Context, a *Animator, target core.Color) error {
	if w.active {
		return nil
	}
	for step := 1; step <= fadeFrames; step++ {
		w.paint(fadeInColor(target, step), true)
		if step == fadeFrames {
			w.active = true
		}
		if err := a.frame(ctx); err != nil {
			w.paint(target, true)
			w.active = true
			return err
		}
	}
	return nil
}

// FadeOut animates the word from `from` back to the baseline. No-op if inactive.
// If ctx is cancelled mid-fade the word snaps to the baseline and ends inactive.
func (w *Word) FadeOut(ctx context.Context, a *Animator, from core.Color) error {
	if !w.active {
		return nil
	}
	for step := 1; step <= fadeFrames; step++ {
		w.paint(fadeOutColor(from, step), false)
		if step == fadeFrames {
			w.active = false
		}
		if err := a.frame(ctx); err != nil {
			w.paint(core.ColorBaseline, false)
			w.active = false
			return err
		}
	}
	return nil
}

func (w *Word) paint(c core.Color, active bool) {
	for _, cell := range w.cells {
		cell.SetColor(c)
		cell.SetActive(active)
	}
}

// joinWords renders words as a space-separated phrase.
func joinWords(words []*Word) string {
	names := make([]string, 0, len(words))
	for _, w := range words {
		names = append(names, w.name)
	}
	return strings.Join(names, " ")
}
