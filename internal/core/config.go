package core

import "time"

// RuntimeConfig contains the settings a clock instance is started with.
// The platform layer builds it from the YAML config plus CLI flags.
type RuntimeConfig struct {
	ScreenW         int            // Screen width in characters
	ScreenH         int            // Screen height in characters
	FPS             int            // Render refresh rate (frames per second)
	TickInterval    time.Duration  // Delay between update cycles, measured from completion
	FrameInterval   time.Duration  // Pause after each fade frame
	RecolorInterval time.Duration  // Pause between cells during a palette change
	Location        *time.Location // Zone the wall clock is read in
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		FPS:             30,
		TickInterval:    30 * time.Second,
		FrameInterval:   30 * time.Millisecond,
		RecolorInterval: 120 * time.Millisecond,
		Location:        time.Local,
	}
}
