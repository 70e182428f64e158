package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/model"
	"github.com/aumai/dhansetu/internal/tui/components"
	"github.com/aumai/dhansetu/internal/tui/theme"
)

// Concepts view modes. The zero value is the split view.
const (
	conceptViewSplit = iota
	conceptViewDetail
)

// conceptsState holds the concepts tab state.
type conceptsState struct {
	cursor       int
	viewMode     int
	detailScroll int
	searching    bool
	searchInput  textinput.Model
	searchQuery  string
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "title or explanation text"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// visibleConcepts applies the active search query to the concept table.
func (a App) visibleConcepts() []model.Concept {
	if a.concepts.searchQuery == "" {
		return a.library.All()
	}
	return a.library.Search(a.concepts.searchQuery)
}

func (a App) renderConceptsTab(cw, h int) string {
	t := theme.Active
	concepts := a.visibleConcepts()

	if len(concepts) == 0 {
		msg := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("No concepts match %q. Esc clears the filter.", a.concepts.searchQuery))
		return components.ContentCard("Concepts", msg, cw)
	}

	cursor := a.concepts.cursor
	if cursor >= len(concepts) {
		cursor = len(concepts) - 1
	}
	sel := concepts[cursor]

	if a.concepts.viewMode == conceptViewDetail {
		body := scrollBody(a.renderConceptBody(sel, cw), a.concepts.detailScroll)
		return components.ContentCard(sel.Title, body, cw)
	}

	if a.isCompactLayout() {
		return a.renderConceptList(concepts, cursor, cw, h, true)
	}

	leftW := cw / 3
	if leftW < 30 {
		leftW = 30
	}
	rightW := cw - leftW

	leftCard := a.renderConceptList(concepts, cursor, leftW, h, false)
	body := scrollBody(a.renderConceptBody(sel, rightW), a.concepts.detailScroll)
	rightCard := components.ContentCard(sel.Title, body, rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

func (a App) renderConceptList(concepts []model.Concept, cursor, w, h int, compact bool) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	visible := h - 6 // card border + title row + footer hint
	if visible < 5 {
		visible = 5
	}
	start, end := listWindow(cursor, visible, len(concepts))

	var body strings.Builder
	for i := start; i < end; i++ {
		line := truncStr(concepts[i].Title, innerW)
		if i == cursor {
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	if compact {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("[Enter] read  [j/k] move  [/] search"))
	}

	title := fmt.Sprintf("Concepts (%d)", len(concepts))
	if a.concepts.searchQuery != "" {
		title = fmt.Sprintf("Concepts /%s (%d)", a.concepts.searchQuery, len(concepts))
	}
	return components.ContentCard(title, body.String(), w)
}

// renderConceptBody generates the full detail content for one concept.
// Used by both the split right pane and the expanded detail view.
func (a App) renderConceptBody(c model.Concept, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	topicStyle := lipgloss.NewStyle().Foreground(t.Blue)
	levelStyle := lipgloss.NewStyle().Foreground(t.Magenta)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	termStyle := lipgloss.NewStyle().Foreground(t.BlueBright)

	var b strings.Builder
	b.WriteString(topicStyle.Render(string(c.Topic)))
	b.WriteString(metaStyle.Render(" · "))
	b.WriteString(levelStyle.Render(string(c.Level)))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n\n")

	for _, line := range wrapText(c.Explanation, innerW) {
		b.WriteString(bodyStyle.Render(line))
		b.WriteString("\n")
	}

	if len(c.Examples) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("EXAMPLES"))
		b.WriteString("\n")
		for _, ex := range c.Examples {
			for j, line := range wrapText(ex, innerW-2) {
				prefix := "- "
				if j > 0 {
					prefix = "  "
				}
				b.WriteString(bodyStyle.Render(prefix + line))
				b.WriteString("\n")
			}
		}
	}

	if len(c.KeyTerms) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("KEY TERMS"))
		b.WriteString("\n")
		for _, line := range wrapText(strings.Join(c.KeyTerms, ", "), innerW) {
			b.WriteString(termStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("[Enter] expand  [j/k] navigate  [/] search  [q] quit"))
	return b.String()
}
