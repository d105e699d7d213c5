package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// cellWidth is the number of columns each letter occupies on the board.
const cellWidth = 3

// styleCache maps core.Color to lipgloss styles, created on first use.
// Fades produce up to a few hundred distinct colors.
type styleCache struct {
	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

var cellStyles = &styleCache{styles: make(map[core.Color]lipgloss.Style)}

func (c *styleCache) get(color core.Color) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	style, ok := c.styles[color]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex()))
		c.styles[color] = style
	}
	return style
}

// RenderBoard converts the clock screen to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderBoard(s *core.Screen) string {
	cells, _ := s.Snapshot()

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(len(cells) * (s.Cols()*cellWidth*4 + 1))

	for y, row := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < len(row) {
			startColor := row[x].Color

			var run strings.Builder
			for x < len(row) && row[x].Color == startColor {
				run.WriteString(padCell(row[x].Text, x == len(row)-1))
				x++
			}
			sb.WriteString(cellStyles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// padCell left-aligns a letter in its cell. The last column is not padded
// so the frame hugs the grid.
func padCell(text string, last bool) string {
	if last {
		return text
	}
	return fmt.Sprintf("%-*s", cellWidth, text)
}

// renderStatus draws the palette selection and engine activity.
func renderStatus(st clock.Status, theme Theme) string {
	parts := []string{
		theme.StatusLabel.Render("color ") + theme.StatusValue.Render(st.Palette.ColorName()),
		theme.StatusLabel.Render("brightness ") + theme.StatusValue.Render(st.Palette.Brightness.String()),
	}

	switch {
	case st.Busy:
		msg := "fading"
		if st.Pending > 0 {
			msg = fmt.Sprintf("fading, %d queued", st.Pending)
		}
		parts = append(parts, theme.StatusBusy.Render(msg))
	case st.LastErr != nil:
		parts = append(parts, theme.StatusError.Render("clock unavailable"))
	}

	return strings.Join(parts, theme.StatusLabel.Render("  ·  "))
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := core.Clamp((width-w)/2, 0, width)
	return strings.Repeat(" ", padding) + text
}
