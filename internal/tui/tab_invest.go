package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
	"github.com/aumai/dhansetu/internal/tui/components"
	"github.com/aumai/dhansetu/internal/tui/theme"
)

// investState holds the invest tab state.
type investState struct {
	cursor int
}

func (a App) renderInvestTab(cw int) string {
	t := theme.Active
	options := a.catalog.CompareAll()
	if len(options) == 0 {
		return components.ContentCard("Investments", "No investment options loaded", cw)
	}

	cursor := a.invest.cursor
	if cursor >= len(options) {
		cursor = len(options) - 1
	}

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	const riskW, retW, lockW, taxW, minW = 8, 9, 7, 5, 10
	nameW := innerW - riskW - retW - lockW - taxW - minW - 5
	if nameW < 14 {
		nameW = 14
	}

	var table strings.Builder
	table.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-8s %9s %7s %5s %10s",
		nameW, "Investment", "Risk", "Return", "Lock-in", "Tax", "Min")))
	table.WriteString("\n")
	table.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	table.WriteString("\n")

	for i, opt := range options {
		nameSeg := fmt.Sprintf("%-*s", nameW, truncStr(opt.Name, nameW))
		riskSeg := fmt.Sprintf(" %-8s", opt.RiskLevel)
		restSeg := fmt.Sprintf(" %9s %7s %5s %10s",
			opt.ExpectedReturnPct,
			cli.FormatLockIn(opt.LockInYears),
			taxShort(opt.TaxBenefit),
			cli.FormatINR(opt.MinInvestment))

		if i == cursor {
			table.WriteString(selectedStyle.Render(nameSeg + riskSeg + restSeg))
		} else {
			table.WriteString(rowStyle.Render(nameSeg))
			table.WriteString(riskStyleFor(opt.RiskLevel).Render(riskSeg))
			table.WriteString(rowStyle.Render(restSeg))
		}
		table.WriteString("\n")
	}
	table.WriteString(mutedStyle.Render("[j/k] select"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Investment Options", table.String(), cw))
	b.WriteString("\n")

	sel := options[cursor]
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(sel.Name, a.renderInvestBody(sel, cw), cw))
		return b.String()
	}

	halves := components.LayoutRow(cw, 2)

	vals := make([]float64, len(options))
	labels := make([]string, len(options))
	for i, opt := range options {
		vals[i] = parseReturnMidpoint(opt.ExpectedReturnPct)
		labels[i] = shortInvestName(opt.Name)
	}
	chartCard := components.ContentCard("Expected Return (midpoint, % p.a.)",
		components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(halves[0]), 8, "%"),
		halves[0])

	detailCard := components.ContentCard(sel.Name, a.renderInvestBody(sel, halves[1]), halves[1])

	b.WriteString(components.CardRow([]string{chartCard, detailCard}))
	return b.String()
}

func (a App) renderInvestBody(opt model.InvestmentOption, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, line := range wrapText(opt.Description, innerW) {
		b.WriteString(bodyStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Risk:", string(opt.RiskLevel)},
		{"Expected return:", opt.ExpectedReturnPct},
		{"Lock-in:", cli.FormatLockIn(opt.LockInYears)},
		{"Tax benefit:", cli.FormatTaxBenefit(opt.TaxBenefit)},
		{"Minimum:", cli.FormatINR(opt.MinInvestment)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-17s", r.label)))
		if r.label == "Risk:" {
			b.WriteString(riskStyleFor(opt.RiskLevel).Render(r.value))
		} else {
			b.WriteString(valueStyle.Render(r.value))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func riskStyleFor(level model.RiskLevel) lipgloss.Style {
	t := theme.Active
	switch level {
	case model.RiskLow:
		return lipgloss.NewStyle().Foreground(t.Green)
	case model.RiskHigh:
		return lipgloss.NewStyle().Foreground(t.Red)
	default:
		return lipgloss.NewStyle().Foreground(t.Yellow)
	}
}

func taxShort(hasBenefit bool) string {
	if hasBenefit {
		return "80C"
	}
	return "-"
}

// parseReturnMidpoint turns a display return like "6.5-7.5%" into the
// midpoint of the range, or the single value when there is no range.
func parseReturnMidpoint(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	parts := strings.SplitN(s, "-", 2)
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0
	}
	if len(parts) == 1 {
		return lo
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return lo
	}
	return (lo + hi) / 2
}

// shortInvestName reduces an instrument name to a chart label, preferring
// a short parenthesised abbreviation when the name carries one.
func shortInvestName(name string) string {
	if open := strings.Index(name, "("); open >= 0 {
		if end := strings.Index(name[open:], ")"); end > 0 {
			abbr := name[open+1 : open+end]
			if len(abbr) <= 6 {
				return abbr
			}
		}
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	first := fields[0]
	if len(first) > 6 {
		first = first[:6]
	}
	return first
}
