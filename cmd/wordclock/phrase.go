package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

var flagNoGrid bool

var phraseCmd = &cobra.Command{
	Use:   "phrase [HH:MM]",
	Short: "Print the phrase for a time",
	Long: `Print the phrase the clock shows for a time of day, and the grid
with the phrase's letters lit. Without an argument the current time in
the configured zone is used.

Examples:
  wordclock phrase
  wordclock phrase 00:42
  wordclock phrase 13:35 --no-grid`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPhrase,
}

func init() {
	phraseCmd.Flags().BoolVar(&flagNoGrid, "no-grid", false, "Print only the phrase")
}

func runPhrase(_ *cobra.Command, args []string) {
	var (
		hour, minute int
		err          error
	)
	if len(args) == 1 {
		hour, minute, err = clock.ParseTimeOfDay(args[0])
	} else {
		rc, _ := loadConfig()
		hour, minute, err = clock.SystemSource{Location: rc.Location}.Now()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mi := clock.AdjustMinutes(minute)
	hi := clock.AdjustHours(hour, mi)

	layout := clock.NewLayout(nil)
	phrase, err := layout.Phrase(hi, mi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cells, err := layout.LitCells(hi, mi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%02d:%02d  %s  (%d cells lit)\n", hour, minute, phrase, len(cells))
	if flagNoGrid {
		return
	}

	lit := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(clock.Palette[0].Full.Hex()))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorBaseline.Hex()))

	grid, err := layout.Render(hi, mi,
		func(s string) string { return lit.Render(s) },
		func(s string) string { return dim.Render(s) },
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(grid)
}
