package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordclock/internal/platform/tui"
	"github.com/vovakirdan/tui-wordclock/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent phrase transitions",
	Long: `Display the phrases the clock has shown, newest first.

Examples:
  wordclock history
  wordclock history --limit 50
  wordclock history --interactive
  wordclock history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of transitions to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a scrollable table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded transitions")
}

func runHistory(_ *cobra.Command, _ []string) {
	rc, _ := loadConfig()

	// Open clock storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening clock database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, rc.Location, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	transitions, err := store.RecentTransitions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Phrase History")
	fmt.Println()

	if len(transitions) == 0 {
		fmt.Println("No transitions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wordclock run' to start recording.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-5s  %s\n", "When", "Slot", "Phrase")
	fmt.Printf("  %-16s  %-5s  %s\n", "----", "----", "------")

	for _, t := range transitions {
		dateStr := t.CreatedAt.In(rc.Location).Format("2006-01-02 15:04")
		slot := fmt.Sprintf("%02d/%02d", t.HourIdx, t.MinuteIdx)
		fmt.Printf("  %-16s  %-5s  %s\n", dateStr, slot, t.Phrase)
	}

	fmt.Println()
	if total, err := store.CountTransitions(); err == nil {
		fmt.Printf("Total recorded: %d\n", total)
	}
}
