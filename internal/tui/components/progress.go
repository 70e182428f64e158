package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/tui/theme"
)

// PercentBar renders a horizontal share bar with the percentage at the end.
// pct is a 0-1 fraction; out-of-range values are clamped.
func PercentBar(pct float64, width int, color lipgloss.Color) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 4 {
		width = 4
	}

	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	filledStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
