package clock

import (
	"context"
	"strings"
	"time"

	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// Brightness selects which member of a palette entry is the active color.
type Brightness int

const (
	BrightnessFull Brightness = iota
	BrightnessDim
	BrightnessOff

	brightnessTiers = 3
)

var brightnessNames = [brightnessTiers]string{"full", "dim", "off"}

// String returns the tier name.
func (b Brightness) String() string {
	if b < 0 || int(b) >= brightnessTiers {
		return "unknown"
	}
	return brightnessNames[b]
}

// BrightnessByName looks up a tier by name (case-insensitive).
func BrightnessByName(name string) (Brightness, bool) {
	for i, n := range brightnessNames {
		if strings.EqualFold(n, name) {
			return Brightness(i), true
		}
	}
	return 0, false
}

// PaletteEntry is one selectable color in its three brightness tiers.
type PaletteEntry struct {
	Name string
	Full core.Color
	Dim  core.Color
	Off  core.Color
}

// Tier returns the entry's color at brightness b.
func (e PaletteEntry) Tier(b Brightness) core.Color {
	switch b {
	case BrightnessDim:
		return e.Dim
	case BrightnessOff:
		return e.Off
	default:
		return e.Full
	}
}

// Palette is the fixed list of selectable colors. The off tier is the
// baseline for every entry; words stay logically active at that tier.
var Palette = [...]PaletteEntry{
	{"white", 0xFFFFFF, 0xAAAAAA, core.ColorBaseline},
	{"green", 0x00FF00, 0x00AA00, core.ColorBaseline},
	{"red", 0xFF0000, 0xAA0000, core.ColorBaseline},
	{"violet", 0xFF00FF, 0xAA00AA, core.ColorBaseline},
	{"indigo", 0x00FFFF, 0x00AAAA, core.ColorBaseline},
	{"yellow", 0xFFFF00, 0xAAAA00, core.ColorBaseline},
	{"blue", 0x0000FF, 0x0000AA, core.ColorBaseline},
}

// ColorIndexByName looks up a palette entry by name (case-insensitive).
func ColorIndexByName(name string) (int, bool) {
	for i, e := range Palette {
		if strings.EqualFold(e.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// PaletteState is the current palette selection.
type PaletteState struct {
	ColorIndex int
	Brightness Brightness
}

// Current returns the active color for this selection.
func (s PaletteState) Current() core.Color {
	return Palette[s.ColorIndex].Tier(s.Brightness)
}

// ColorName returns the selected entry's name.
func (s PaletteState) ColorName() string {
	return Palette[s.ColorIndex].Name
}

// Valid reports whether both indices are in range.
func (s PaletteState) Valid() bool {
	return s.ColorIndex >= 0 && s.ColorIndex < len(Palette) &&
		s.Brightness >= 0 && int(s.Brightness) < brightnessTiers
}

// PaletteController owns the palette selection and recolors active cells
// when it changes. It never touches activity flags.
type PaletteController struct {
	state PaletteState
	grid  *Grid
	pacer Pacer
	delay time.Duration
}

// NewPaletteController creates a controller starting at state.
// An invalid state falls back to full-bright white.
func NewPaletteController(grid *Grid, state PaletteState, pacer Pacer, delay time.Duration) *PaletteController {
	if !state.Valid() {
		state = PaletteState{}
	}
	return &PaletteController{state: state, grid: grid, pacer: pacer, delay: delay}
}

// State returns the current selection.
func (pc *PaletteController) State() PaletteState {
	return pc.state
}

// Current returns the active color.
func (pc *PaletteController) Current() core.Color {
	return pc.state.Current()
}

// CycleColor advances to the next palette entry and recolors active cells.
func (pc *PaletteController) CycleColor(ctx context.Context) error {
	pc.state.ColorIndex = LoopAdd(len(Palette), pc.state.ColorIndex)
	return pc.recolor(ctx)
}

// CycleBrightness advances to the next brightness tier and recolors active cells.
func (pc *PaletteController) CycleBrightness(ctx context.Context) error {
	pc.state.Brightness = Brightness(LoopAdd(brightnessTiers, int(pc.state.Brightness)))
	return pc.recolor(ctx)
}

// recolor assigns the current color to every active cell, one at a time.
// On cancellation the remaining cells are assigned without pacing.
func (pc *PaletteController) recolor(ctx context.Context) error {
	color := pc.state.Current()
	cells := pc.grid.ActiveCells()
	for i, cell := range cells {
		cell.SetColor(color)
		if err := pc.pacer.Yield(ctx, pc.delay); err != nil {
			for _, rest := range cells[i+1:] {
				rest.SetColor(color)
			}
			return err
		}
	}
	return nil
}
