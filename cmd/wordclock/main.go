// wordclock is a terminal word clock: a 10x10 letter grid that spells the
// time in five-minute steps and fades words in and out as it changes.
//
// Usage:
//
//	wordclock run              - Show the clock in this terminal
//	wordclock serve            - Start SSH server so others can watch
//	wordclock phrase [HH:MM]   - Print the phrase and grid for a time
//	wordclock palettes         - List the selectable colors
//	wordclock history          - Show recent phrase transitions
//
// Global flags:
//
//	--config <path> - Use a custom config YAML
//	--db <path>     - Set database path (default: ~/.wordclock/wordclock.db)
//	--fps <rate>    - Override the redraw rate from the config
//	--verbose       - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordclock/internal/config"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagFPS     int
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordclock",
	Short: "Word clock - tell the time in words in your terminal",
	Long: `Word clock shows the time as lit words on a 10x10 letter grid,
rounded to five minutes, with fading transitions between phrases.

Available commands:
  run       - Show the clock in this terminal
  serve     - Start SSH server so others can watch the clock
  phrase    - Print the phrase for a time without animation
  palettes  - List the selectable colors and brightness levels
  history   - Show recent phrase transitions

Examples:
  wordclock run
  wordclock run --at 00:42
  wordclock phrase 13:35
  wordclock serve --ssh :2222
  wordclock history --limit 50`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom clock config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordclock/wordclock.db", "Path to clock database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate (0 = use config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(phraseCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads and validates the clock config, applying global flags.
func loadConfig() (core.RuntimeConfig, config.ClockConfig) {
	cc, err := config.LoadClock(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := cc.Runtime()
	if flagFPS > 0 {
		rc.FPS = flagFPS
	}
	return rc, cc
}
