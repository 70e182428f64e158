package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
	"github.com/aumai/dhansetu/internal/tui/components"
	"github.com/aumai/dhansetu/internal/tui/theme"
)

// schemesState holds the schemes tab state.
type schemesState struct {
	cursor       int
	detailScroll int
}

func (a App) renderSchemesTab(cw, h int) string {
	schemes := a.matcher.All()
	if len(schemes) == 0 {
		return components.ContentCard("Schemes", "No schemes loaded", cw)
	}

	cursor := a.schemes.cursor
	if cursor >= len(schemes) {
		cursor = len(schemes) - 1
	}
	sel := schemes[cursor]

	if a.isCompactLayout() {
		body := scrollBody(a.renderSchemeBody(sel, cw), a.schemes.detailScroll)
		title := fmt.Sprintf("%s (%d/%d)", truncStr(sel.Name, components.CardInnerWidth(cw)-8), cursor+1, len(schemes))
		return components.ContentCard(title, body, cw)
	}

	leftW := cw / 3
	if leftW < 30 {
		leftW = 30
	}
	rightW := cw - leftW

	leftCard := a.renderSchemeList(schemes, cursor, leftW, h)
	body := scrollBody(a.renderSchemeBody(sel, rightW), a.schemes.detailScroll)
	rightCard := components.ContentCard(sel.Name, body, rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

func (a App) renderSchemeList(schemes []model.Scheme, cursor, w, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	visible := h - 6
	if visible < 5 {
		visible = 5
	}
	start, end := listWindow(cursor, visible, len(schemes))

	var body strings.Builder
	for i := start; i < end; i++ {
		line := truncStr(schemes[i].Name, innerW)
		if i == cursor {
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	return components.ContentCard(fmt.Sprintf("Schemes (%d)", len(schemes)), body.String(), w)
}

// renderSchemeBody generates the full detail content for one scheme.
func (a App) renderSchemeBody(s model.Scheme, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	ministryStyle := lipgloss.NewStyle().Foreground(t.Magenta)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	boundsStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	var b strings.Builder
	b.WriteString(ministryStyle.Render(s.Ministry))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	bounds := fmt.Sprintf("For: %s · Age: %s", strings.ReplaceAll(s.TargetGroup, "_", " "), formatAgeRange(s.MinAge, s.MaxAge))
	if s.IncomeLimit != nil {
		bounds += fmt.Sprintf(" · Income up to %s", cli.FormatINR(*s.IncomeLimit))
	}
	b.WriteString(boundsStyle.Render(truncStr(bounds, innerW)))
	b.WriteString("\n\n")

	for _, line := range wrapText(s.Description, innerW) {
		b.WriteString(bodyStyle.Render(line))
		b.WriteString("\n")
	}

	sections := []struct {
		header string
		text   string
	}{
		{"ELIGIBILITY", s.Eligibility},
		{"BENEFITS", s.Benefits},
		{"HOW TO APPLY", s.HowToApply},
	}
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(sec.header))
		b.WriteString("\n")
		for _, line := range wrapText(sec.text, innerW) {
			b.WriteString(bodyStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("[j/k] schemes  [J/K] scroll  [q] quit"))
	return b.String()
}

// formatAgeRange renders a scheme's age window. Nil bounds mean the
// scheme does not restrict on that side.
func formatAgeRange(minAge, maxAge *int) string {
	switch {
	case minAge == nil && maxAge == nil:
		return "any"
	case maxAge == nil:
		return fmt.Sprintf("%d+", *minAge)
	case minAge == nil:
		return fmt.Sprintf("up to %d", *maxAge)
	default:
		return fmt.Sprintf("%d-%d", *minAge, *maxAge)
	}
}
