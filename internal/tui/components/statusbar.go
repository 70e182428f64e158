package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and the loaded table sizes on the right.
func RenderStatusBar(width, concepts, schemes, investments, guides int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [q]uit"
	right := fmt.Sprintf("%d concepts · %d schemes · %d investments · %d guides ",
		concepts, schemes, investments, guides)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
