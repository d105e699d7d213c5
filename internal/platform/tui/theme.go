package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles drawn around the clock face.
// Cell colors come from the engine; everything else is styled here.
type Theme struct {
	// Clock face
	Frame lipgloss.Style

	// Status line
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	StatusBusy  lipgloss.Style
	StatusError lipgloss.Style

	// Footer
	Help lipgloss.Style

	// History view
	Title         lipgloss.Style
	Panel         lipgloss.Style
	Empty         lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2),

		StatusLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		StatusBusy:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false),
	}
}
