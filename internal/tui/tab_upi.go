package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/model"
	"github.com/aumai/dhansetu/internal/tui/components"
	"github.com/aumai/dhansetu/internal/tui/theme"
)

// upiState holds the UPI tab state.
type upiState struct {
	cursor       int
	detailScroll int
}

func (a App) renderUPITab(cw, h int) string {
	topics := a.guide.Topics()
	if len(topics) == 0 {
		return components.ContentCard("UPI", "No guides loaded", cw)
	}

	cursor := a.upi.cursor
	if cursor >= len(topics) {
		cursor = len(topics) - 1
	}
	entry, ok := a.guide.Entry(topics[cursor])
	if !ok {
		return components.ContentCard("UPI", "No guides loaded", cw)
	}

	title := "UPI · " + titleCaseTopic(entry.Topic)
	if a.isCompactLayout() {
		body := scrollBody(a.renderUPIBody(entry, cw), a.upi.detailScroll)
		return components.ContentCard(fmt.Sprintf("%s (%d/%d)", title, cursor+1, len(topics)), body, cw)
	}

	leftW := cw / 3
	if leftW < 30 {
		leftW = 30
	}
	rightW := cw - leftW

	leftCard := a.renderUPITopicList(topics, cursor, leftW)
	body := scrollBody(a.renderUPIBody(entry, rightW), a.upi.detailScroll)
	rightCard := components.ContentCard(title, body, rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

func (a App) renderUPITopicList(topics []string, cursor, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	for i, slug := range topics {
		steps := 0
		if e, ok := a.guide.Entry(slug); ok {
			steps = len(e.Steps)
		}
		name := truncStr(titleCaseTopic(slug), innerW-10)
		line := fmt.Sprintf("%-*s", innerW-9, name)
		if i == cursor {
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString(countStyle.Render(fmt.Sprintf(" %d steps", steps)))
		body.WriteString("\n")
	}

	return components.ContentCard("Guides", body.String(), w)
}

// renderUPIBody lays out one guide: the numbered steps as curated, then
// tips and warnings.
func (a App) renderUPIBody(e model.UPIGuideEntry, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	stepStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	tipHeadStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	tipStyle := lipgloss.NewStyle().Foreground(t.Green)
	warnHeadStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder
	// Steps carry their own numbering; continuation lines hang under it.
	for _, step := range e.Steps {
		for j, line := range wrapText(step, innerW-3) {
			if j > 0 {
				line = "   " + line
			}
			b.WriteString(stepStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if len(e.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(tipHeadStyle.Render("TIPS"))
		b.WriteString("\n")
		for _, tip := range e.Tips {
			for j, line := range wrapText(tip, innerW-2) {
				prefix := "* "
				if j > 0 {
					prefix = "  "
				}
				b.WriteString(tipStyle.Render(prefix + line))
				b.WriteString("\n")
			}
		}
	}

	if len(e.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(warnHeadStyle.Render("WARNINGS"))
		b.WriteString("\n")
		for _, warning := range e.Warnings {
			for j, line := range wrapText(warning, innerW-2) {
				prefix := "! "
				if j > 0 {
					prefix = "  "
				}
				b.WriteString(warnStyle.Render(prefix + line))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("[j/k] topics  [J/K] scroll  [q] quit"))
	return b.String()
}

func titleCaseTopic(slug string) string {
	if slug == "" {
		return slug
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}
