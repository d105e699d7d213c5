package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the selectable colors",
	Long:  `Shows every palette entry with its full, dim and off colors.`,
	Args:  cobra.NoArgs,
	Run:   runPalettes,
}

func runPalettes(_ *cobra.Command, _ []string) {
	fmt.Println("Palette:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range clock.Palette {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-9s  %-9s  %s\n", "#", maxNameLen, "Name", "Full", "Dim", "Off")
	fmt.Printf("  %-3s  %-*s  %-9s  %-9s  %s\n", "-", maxNameLen, "----", "----", "---", "---")

	for i, e := range clock.Palette {
		fmt.Printf("  %-3d  %-*s  %s  %s  %s\n", i, maxNameLen, e.Name,
			swatch(e.Full), swatch(e.Dim), swatch(e.Off))
	}

	fmt.Println()
	fmt.Println("Set the starting color under palette.color in the config,")
	fmt.Println("or press C while the clock runs.")
}

// swatch renders a hex value in its own color, padded to a fixed width.
func swatch(c core.Color) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Width(9)
	return style.Render(c.Hex())
}
