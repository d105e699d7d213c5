package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordclock.yaml
var defaultClockYAML []byte

// DefaultClockConfig returns the default clock configuration.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		Timing: TimingConfig{
			TickInterval:    30 * time.Second,
			FrameInterval:   30 * time.Millisecond,
			RecolorInterval: 120 * time.Millisecond,
		},
		Palette: PaletteConfig{
			Color:      "white",
			Brightness: "full",
		},
		Display: DisplayConfig{
			FPS:      30,
			Location: "Local",
		},
		Storage: StorageConfig{
			RememberPalette: true,
			RecordHistory:   true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClockYAML
}
