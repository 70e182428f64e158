package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/tui/theme"
)

// Tab is one entry in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut key, highlighted inside the name
}

// Tabs defines the five browser tabs in display order. The order must
// match the tab index constants in the tui package.
var Tabs = []Tab{
	{Name: "Concepts", Key: 'c'},
	{Name: "Schemes", Key: 's'},
	{Name: "Invest", Key: 'i'},
	{Name: "UPI", Key: 'u'},
	{Name: "Advisor", Key: 'a'},
}

// renderTab renders one tab with a single padding column on each side.
// The shortcut letter is highlighted in place so the visual width stays
// len(name)+2 whether the tab is active or not.
func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		style := lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.AccentDim).
			Bold(true)
		return style.Render(" " + tab.Name + " ")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	idx := strings.IndexRune(strings.ToLower(tab.Name), tab.Key)
	if idx < 0 {
		return nameStyle.Render(" " + tab.Name + " ")
	}
	return nameStyle.Render(" "+tab.Name[:idx]) +
		keyStyle.Render(string(tab.Name[idx])) +
		nameStyle.Render(tab.Name[idx+1:]+" ")
}

// TabVisualWidth returns the rendered width of a tab. Mouse hitboxes are
// derived from this, so it must stay in sync with renderTab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the single-row tab bar, filled to the full width.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}

	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	row := strings.Join(parts, sep)

	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
