// Package config provides YAML-based configuration loading for the word
// clock: timing, starting palette, display and persistence settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// ClockConfig contains all configuration for one clock instance.
type ClockConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Palette PaletteConfig `yaml:"palette"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// TimingConfig defines the pacing of the update cycle and animations.
type TimingConfig struct {
	TickInterval    time.Duration `yaml:"tick_interval"`    // Wait between update cycles
	FrameInterval   time.Duration `yaml:"frame_interval"`   // Pause after each fade frame
	RecolorInterval time.Duration `yaml:"recolor_interval"` // Pause between cells on palette change
}

// PaletteConfig selects the starting palette entry.
type PaletteConfig struct {
	Color      string `yaml:"color"`      // Palette entry name, e.g. "white"
	Brightness string `yaml:"brightness"` // "full", "dim" or "off"
}

// DisplayConfig defines how the clock is drawn.
type DisplayConfig struct {
	FPS      int    `yaml:"fps"`
	Location string `yaml:"location"` // IANA zone name or "Local"
}

// StorageConfig toggles what is persisted to the database.
type StorageConfig struct {
	RememberPalette bool `yaml:"remember_palette"`
	RecordHistory   bool `yaml:"record_history"`
}

// Validate checks that every field is usable.
func (c ClockConfig) Validate() error {
	var errs []error

	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Timing.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_interval must be positive, got %s", c.Timing.FrameInterval))
	}
	if c.Timing.RecolorInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.recolor_interval must be positive, got %s", c.Timing.RecolorInterval))
	}
	if _, err := c.PaletteState(); err != nil {
		errs = append(errs, err)
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 120 {
		errs = append(errs, fmt.Errorf("display.fps must be in 1..120, got %d", c.Display.FPS))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// PaletteState resolves the configured color and brightness names.
func (c ClockConfig) PaletteState() (clock.PaletteState, error) {
	var state clock.PaletteState

	idx, ok := clock.ColorIndexByName(c.Palette.Color)
	if !ok {
		return state, fmt.Errorf("palette.color: unknown color %q", c.Palette.Color)
	}
	b, ok := clock.BrightnessByName(c.Palette.Brightness)
	if !ok {
		return state, fmt.Errorf("palette.brightness: unknown level %q", c.Palette.Brightness)
	}

	state.ColorIndex = idx
	state.Brightness = b
	return state, nil
}

// Location resolves the configured time zone. Empty means local time.
func (c ClockConfig) Location() (*time.Location, error) {
	switch c.Display.Location {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Display.Location)
	if err != nil {
		return nil, fmt.Errorf("display.location: %w", err)
	}
	return loc, nil
}

// Runtime converts the config into the settings an engine is started with.
// Call Validate first; invalid fields fall back to defaults.
func (c ClockConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if c.Timing.TickInterval > 0 {
		rc.TickInterval = c.Timing.TickInterval
	}
	if c.Timing.FrameInterval > 0 {
		rc.FrameInterval = c.Timing.FrameInterval
	}
	if c.Timing.RecolorInterval > 0 {
		rc.RecolorInterval = c.Timing.RecolorInterval
	}
	if c.Display.FPS > 0 {
		rc.FPS = c.Display.FPS
	}
	if loc, err := c.Location(); err == nil {
		rc.Location = loc
	}
	return rc
}
