// Package tui provides the interactive Bubble Tea browser for dhansetu.
package tui

import (
	"fmt"
	"strings"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/tui/components"
	"github.com/aumai/dhansetu/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices. The order must match components.Tabs.
const (
	tabConcepts = iota
	tabSchemes
	tabInvest
	tabUPI
	tabAdvisor
)

// App is the root Bubble Tea model.
type App struct {
	// Content tables and the query services over them
	store   *content.Store
	library *advisor.Library
	matcher *advisor.Matcher
	catalog *advisor.Catalog
	guide   *advisor.UPIGuide

	// Table sizes for the status bar and cursor clamping; the store is
	// immutable so these never change after construction.
	nConcepts    int
	nSchemes     int
	nInvestments int
	nGuides      int

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	concepts conceptsState
	schemes  schemesState
	invest   investState
	upi      upiState
	adv      advisorState
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 180

	// Scroll navigation
	scrollOverhead    = 10 // approximate header + status bar height for half-page calc
	minHalfPageScroll = 1  // minimum lines for half-page scroll
	minContentHeight  = 5  // minimum content area height
)

// NewApp creates the TUI model over an already-loaded content store.
func NewApp(store *content.Store) App {
	return App{
		store:        store,
		library:      advisor.NewLibrary(store),
		matcher:      advisor.NewMatcher(store),
		catalog:      advisor.NewCatalog(store),
		guide:        advisor.NewUPIGuide(store),
		nConcepts:    len(store.Concepts()),
		nSchemes:     len(store.Schemes()),
		nInvestments: len(store.Investments()),
		nGuides:      len(store.UPITopics()),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Resize the checkup form to the new card width if active
		if a.adv.form != nil {
			a.adv.form = a.adv.form.WithWidth(components.CardInnerWidth(a.contentWidth()))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.adv.form != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.selectionMove(-1)
			return a, nil

		case tea.MouseButtonWheelDown:
			a.selectionMove(1)
			return a, nil

		case tea.MouseButtonLeft:
			// Check if click is in tab bar area (first 2 lines)
			if msg.Y <= 1 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					return a.switchTab(tab)
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Checkup form intercepts all keys while active
		if a.adv.form != nil {
			if key == "esc" {
				a.adv.form = nil
				return a, nil
			}
			return a.updateAdvisorForm(msg)
		}

		// Concepts search mode intercepts all keys when active
		if a.activeTab == tabConcepts && a.concepts.searching {
			return a.updateConceptsSearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Concepts tab has its own keybindings (search + detail view)
		if a.activeTab == tabConcepts {
			compact := a.isCompactLayout()
			visible := a.visibleConcepts()

			switch key {
			case "/":
				// Start search mode
				a.concepts.searching = true
				a.concepts.searchInput = newSearchInput()
				a.concepts.searchInput.Focus()
				return a, a.concepts.searchInput.Cursor.BlinkCmd()
			case "q":
				if !compact && a.concepts.viewMode == conceptViewDetail {
					a.concepts.viewMode = conceptViewSplit
					return a, nil
				}
				return a, tea.Quit
			case "enter":
				if compact {
					return a, nil
				}
				if a.concepts.viewMode == conceptViewSplit {
					a.concepts.viewMode = conceptViewDetail
				}
				return a, nil
			case "esc":
				// Clear search if active, otherwise exit detail view
				if a.concepts.searchQuery != "" {
					a.concepts.searchQuery = ""
					a.concepts.cursor = 0
					a.concepts.detailScroll = 0
					return a, nil
				}
				if compact {
					return a, nil
				}
				if a.concepts.viewMode == conceptViewDetail {
					a.concepts.viewMode = conceptViewSplit
				}
				return a, nil
			case "j", "down":
				if a.concepts.cursor < len(visible)-1 {
					a.concepts.cursor++
					a.concepts.detailScroll = 0
				}
				return a, nil
			case "k", "up":
				if a.concepts.cursor > 0 {
					a.concepts.cursor--
					a.concepts.detailScroll = 0
				}
				return a, nil
			case "g":
				a.concepts.cursor = 0
				a.concepts.detailScroll = 0
				return a, nil
			case "G":
				a.concepts.cursor = len(visible) - 1
				if a.concepts.cursor < 0 {
					a.concepts.cursor = 0
				}
				a.concepts.detailScroll = 0
				return a, nil
			case "J":
				a.concepts.detailScroll++
				return a, nil
			case "K":
				if a.concepts.detailScroll > 0 {
					a.concepts.detailScroll--
				}
				return a, nil
			case "ctrl+d":
				a.concepts.detailScroll += a.halfPage()
				return a, nil
			case "ctrl+u":
				a.concepts.detailScroll -= a.halfPage()
				if a.concepts.detailScroll < 0 {
					a.concepts.detailScroll = 0
				}
				return a, nil
			}
		}

		if a.activeTab == tabSchemes {
			switch key {
			case "j", "down":
				if a.schemes.cursor < a.nSchemes-1 {
					a.schemes.cursor++
					a.schemes.detailScroll = 0
				}
				return a, nil
			case "k", "up":
				if a.schemes.cursor > 0 {
					a.schemes.cursor--
					a.schemes.detailScroll = 0
				}
				return a, nil
			case "g":
				a.schemes.cursor = 0
				a.schemes.detailScroll = 0
				return a, nil
			case "G":
				a.schemes.cursor = a.nSchemes - 1
				a.schemes.detailScroll = 0
				return a, nil
			case "J":
				a.schemes.detailScroll++
				return a, nil
			case "K":
				if a.schemes.detailScroll > 0 {
					a.schemes.detailScroll--
				}
				return a, nil
			case "ctrl+d":
				a.schemes.detailScroll += a.halfPage()
				return a, nil
			case "ctrl+u":
				a.schemes.detailScroll -= a.halfPage()
				if a.schemes.detailScroll < 0 {
					a.schemes.detailScroll = 0
				}
				return a, nil
			}
		}

		if a.activeTab == tabInvest {
			switch key {
			case "j", "down":
				if a.invest.cursor < a.nInvestments-1 {
					a.invest.cursor++
				}
				return a, nil
			case "k", "up":
				if a.invest.cursor > 0 {
					a.invest.cursor--
				}
				return a, nil
			case "g":
				a.invest.cursor = 0
				return a, nil
			case "G":
				a.invest.cursor = a.nInvestments - 1
				return a, nil
			}
		}

		if a.activeTab == tabUPI {
			switch key {
			case "j", "down":
				if a.upi.cursor < a.nGuides-1 {
					a.upi.cursor++
					a.upi.detailScroll = 0
				}
				return a, nil
			case "k", "up":
				if a.upi.cursor > 0 {
					a.upi.cursor--
					a.upi.detailScroll = 0
				}
				return a, nil
			case "g":
				a.upi.cursor = 0
				a.upi.detailScroll = 0
				return a, nil
			case "G":
				a.upi.cursor = a.nGuides - 1
				a.upi.detailScroll = 0
				return a, nil
			case "J":
				a.upi.detailScroll++
				return a, nil
			case "K":
				if a.upi.detailScroll > 0 {
					a.upi.detailScroll--
				}
				return a, nil
			case "ctrl+d":
				a.upi.detailScroll += a.halfPage()
				return a, nil
			case "ctrl+u":
				a.upi.detailScroll -= a.halfPage()
				if a.upi.detailScroll < 0 {
					a.upi.detailScroll = 0
				}
				return a, nil
			}
		}

		if a.activeTab == tabAdvisor && key == "e" {
			cmd := a.startAdvisorForm()
			return a, cmd
		}

		// Global quit from any tab
		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			return a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		case "right":
			return a.switchTab((a.activeTab + 1) % len(components.Tabs))
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				return a.switchTab(idx)
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the checkup form and the search
	// input (cursor blinks, etc.)
	if a.adv.form != nil {
		return a.updateAdvisorForm(msg)
	}
	if a.concepts.searching {
		var cmd tea.Cmd
		a.concepts.searchInput, cmd = a.concepts.searchInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

// switchTab activates a tab. Entering the Advisor tab with no answers
// yet starts the checkup form right away.
func (a App) switchTab(idx int) (tea.Model, tea.Cmd) {
	a.activeTab = idx
	if idx == tabAdvisor && a.adv.form == nil && !a.adv.completed {
		cmd := a.startAdvisorForm()
		return a, cmd
	}
	return a, nil
}

func (a *App) startAdvisorForm() tea.Cmd {
	if a.adv.vals == nil {
		a.adv.vals = &advisorValues{}
	}
	a.adv.form = newAdvisorForm(a.adv.vals)
	if a.width > 0 {
		a.adv.form = a.adv.form.WithWidth(components.CardInnerWidth(a.contentWidth()))
	}
	return a.adv.form.Init()
}

func (a App) updateAdvisorForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.adv.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.adv.form = f
	}

	if a.adv.form.State == huh.StateCompleted {
		a.applyAdvisorProfile()
		a.adv.form = nil
		return a, nil
	}

	if a.adv.form.State == huh.StateAborted {
		a.adv.form = nil
		return a, nil
	}

	return a, cmd
}

// updateConceptsSearch handles key events while in search mode.
func (a App) updateConceptsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Apply search and exit search mode
		a.concepts.searchQuery = strings.TrimSpace(a.concepts.searchInput.Value())
		a.concepts.searching = false
		a.concepts.cursor = 0
		a.concepts.detailScroll = 0
		return a, nil

	case "esc":
		// Cancel search mode without applying
		a.concepts.searching = false
		return a, nil
	}

	// Forward other keys to the text input
	var cmd tea.Cmd
	a.concepts.searchInput, cmd = a.concepts.searchInput.Update(msg)
	return a, cmd
}

// selectionMove steps the active tab's list cursor, used by the mouse
// wheel. The Advisor tab has no list to move through.
func (a *App) selectionMove(delta int) {
	switch a.activeTab {
	case tabConcepts:
		if a.concepts.searching {
			return
		}
		next := a.concepts.cursor + delta
		if next >= 0 && next < len(a.visibleConcepts()) {
			a.concepts.cursor = next
			a.concepts.detailScroll = 0
		}
	case tabSchemes:
		next := a.schemes.cursor + delta
		if next >= 0 && next < a.nSchemes {
			a.schemes.cursor = next
			a.schemes.detailScroll = 0
		}
	case tabInvest:
		next := a.invest.cursor + delta
		if next >= 0 && next < a.nInvestments {
			a.invest.cursor = next
		}
	case tabUPI:
		next := a.upi.cursor + delta
		if next >= 0 && next < a.nGuides {
			a.upi.cursor = next
			a.upi.detailScroll = 0
		}
	}
}

func (a App) halfPage() int {
	hp := (a.height - scrollOverhead) / 2
	if hp < minHalfPageScroll {
		hp = minHalfPageScroll
	}
	return hp
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  dhansetu needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"c s i u a", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"J K", "Scroll detail pane"},
		{"^d ^u", "Half-page scroll"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"/", "Search concepts"},
		{"Enter", "Expand / Confirm"},
		{"Esc", "Back / Cancel"},
		{"e", "Edit checkup answers"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + context line)
	header := components.RenderTabBar(a.activeTab, w) + a.headerContextLine(w)

	// 2. Render status bar
	statusBar := components.RenderStatusBar(w, a.nConcepts, a.nSchemes, a.nInvestments, a.nGuides)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content (list tabs size their windows from contentH)
	var content string
	switch a.activeTab {
	case tabConcepts:
		content = a.renderConceptsTab(cw, contentH)
	case tabSchemes:
		content = a.renderSchemesTab(cw, contentH)
	case tabInvest:
		content = a.renderInvestTab(cw)
	case tabUPI:
		content = a.renderUPITab(cw, contentH)
	case tabAdvisor:
		content = a.renderAdvisorTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure entire terminal is filled with background
	// This handles any edge cases where the calculated heights don't perfectly match
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// headerContextLine renders the row under the tab bar: the live search
// input while searching, otherwise a short hint for the active tab.
func (a App) headerContextLine(w int) string {
	t := theme.Active

	rowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	if a.activeTab == tabConcepts && a.concepts.searching {
		inputStyle := lipgloss.NewStyle().
			Foreground(t.TextPrimary).
			Background(t.Surface)
		return rowStyle.Render(inputStyle.Render(" " + a.concepts.searchInput.View()))
	}

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var hint string
	switch a.activeTab {
	case tabConcepts:
		hint = "browse concepts · / to search"
		if a.concepts.searchQuery != "" {
			hint = fmt.Sprintf("filtered: %q · esc to clear", a.concepts.searchQuery)
		}
	case tabSchemes:
		hint = "government schemes and who qualifies"
	case tabInvest:
		hint = "compare investment options side by side"
	case tabUPI:
		hint = "step-by-step UPI walkthroughs"
	case tabAdvisor:
		hint = "budget plan and suggestions for your profile"
	}

	return rowStyle.Render(hintStyle.Render(" " + hint))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		// Use PlaceHorizontal to ensure proper width and background fill
		// This is more reliable than just Background().Render(spaces)
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// wrapText word-wraps s to the given width, preserving paragraph
// breaks. Words longer than the width get a line of their own.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return out
}

// scrollBody drops the first offset lines of a rendered body, clamping
// so at least the last line stays visible.
func scrollBody(body string, offset int) string {
	if offset <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	return strings.Join(lines[offset:], "\n")
}

// listWindow returns the half-open range of list rows to draw so the
// cursor stays centered once the list outgrows the window.
func listWindow(cursor, visible, total int) (int, int) {
	if total <= visible {
		return 0, total
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start, start + visible
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		// Must match RenderTabBar's visual width calculation exactly.
		// Use lipgloss.Width() to handle unicode and styled text correctly.
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
