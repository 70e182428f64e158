package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
	"github.com/aumai/dhansetu/internal/tui/components"
	"github.com/aumai/dhansetu/internal/tui/theme"
)

// advisorValues backs the checkup form fields. They persist after the
// form completes so editing the profile starts from the last answers.
type advisorValues struct {
	income     string
	age        string
	occupation string
	risk       string
}

// advisorState holds the Advisor tab state: the live form while the
// user is answering, and the computed results afterwards. vals is a
// pointer because the form binds to its fields and the App model is
// copied on every update; both must see the same struct.
type advisorState struct {
	form      *huh.Form
	vals      *advisorValues
	completed bool

	plan    model.BudgetPlan
	schemes []model.Scheme
	options []model.InvestmentOption
}

func newAdvisorForm(vals *advisorValues) *huh.Form {
	if vals.risk == "" {
		vals.risk = string(model.RiskLow)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income (Rs)").
				Placeholder("25000").
				Value(&vals.income).
				Validate(validateFormIncome),
			huh.NewInput().
				Title("Age").
				Placeholder("press Enter to skip").
				Value(&vals.age).
				Validate(validateFormAge),
			huh.NewInput().
				Title("Occupation").
				Placeholder("farmer, salaried, self-employed, ... (Enter to skip)").
				Value(&vals.occupation),
			huh.NewSelect[string]().
				Title("Risk appetite").
				Options(
					huh.NewOption("Low - protect my money", string(model.RiskLow)),
					huh.NewOption("Moderate - some ups and downs are fine", string(model.RiskModerate)),
					huh.NewOption("High - growth over safety", string(model.RiskHigh)),
				).
				Value(&vals.risk),
		),
	)
}

func validateFormIncome(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v <= 0 {
		return errors.New("income must be positive")
	}
	return nil
}

func validateFormAge(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 0 || v > 120 {
		return errors.New("age must be between 0 and 120")
	}
	return nil
}

// applyAdvisorProfile computes the plan, eligible schemes, and
// investment suggestions from the completed form values. The form
// validators already vetted income and age, so parse errors here mean
// an empty profile and are treated as "not completed".
func (a *App) applyAdvisorProfile() {
	income, err := strconv.ParseFloat(strings.TrimSpace(a.adv.vals.income), 64)
	if err != nil {
		return
	}
	plan, err := advisor.Plan(income)
	if err != nil {
		return
	}

	var age *int
	if trimmed := strings.TrimSpace(a.adv.vals.age); trimmed != "" {
		if v, err := strconv.Atoi(trimmed); err == nil {
			age = &v
		}
	}
	occupation := strings.TrimSpace(a.adv.vals.occupation)

	a.adv.plan = plan
	a.adv.schemes = a.matcher.FindEligible(age, &income, occupation)
	a.adv.options = a.catalog.ByRisk(model.RiskLevel(a.adv.vals.risk))
	a.adv.completed = true
}

func (a App) renderAdvisorTab(cw int) string {
	if a.adv.form != nil {
		return components.ContentCard("Financial Checkup", a.adv.form.View(), cw)
	}
	if !a.adv.completed {
		return components.ContentCard("Financial Checkup",
			"Answer a few questions to get a budget plan, eligible government\n"+
				"schemes, and investment suggestions for your profile.\n\n"+
				"Press e to begin.", cw)
	}
	return a.renderAdvisorResults(cw)
}

func (a App) renderAdvisorResults(cw int) string {
	t := theme.Active
	plan := a.adv.plan

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: cli.FormatINR(plan.Income)},
		{Label: "Savings Target", Value: cli.FormatINR(plan.SavingsTarget), Hint: "per month"},
		{Label: "Emergency Fund", Value: fmt.Sprintf("%d months", plan.EmergencyFundMonths), Hint: "of expenses"},
	}, cw)

	allocCard := a.renderAllocationCard(cw)
	recsCard := a.renderRecommendationsCard(cw)

	var bottom string
	if a.isCompactLayout() {
		bottom = a.renderEligibleSchemesCard(cw) + "\n" + a.renderSuggestedOptionsCard(cw)
	} else {
		halves := components.LayoutRow(cw, 2)
		bottom = components.CardRow([]string{
			a.renderEligibleSchemesCard(halves[0]),
			a.renderSuggestedOptionsCard(halves[1]),
		})
	}

	hint := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" [e] edit answers")

	return metrics + "\n" + allocCard + "\n" + recsCard + "\n" + bottom + "\n" + hint
}

// renderAllocationCard shows the 50/30/20-style split as percent bars.
func (a App) renderAllocationCard(cw int) string {
	t := theme.Active
	plan := a.adv.plan
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	colors := map[model.BudgetCategory]lipgloss.Color{
		model.CategoryNeeds:   t.Blue,
		model.CategoryWants:   t.Magenta,
		model.CategorySavings: t.Green,
	}

	barW := innerW - 32
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, cat := range model.BudgetCategories {
		amount := plan.Allocations[string(cat)]
		share := 0.0
		if plan.Income > 0 {
			share = amount / plan.Income
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", cat)))
		b.WriteString(" ")
		b.WriteString(components.PercentBar(share, barW, colors[cat]))
		b.WriteString(amountStyle.Render(fmt.Sprintf("  %12s", cli.FormatINR(amount))))
		b.WriteString("\n")
	}

	return components.ContentCard(fmt.Sprintf("Budget for %s/month", cli.FormatINR(plan.Income)), b.String(), cw)
}

func (a App) renderRecommendationsCard(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	numStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, rec := range a.adv.plan.Recommendations {
		num := fmt.Sprintf("%d. ", i+1)
		for j, line := range wrapText(rec, innerW-len(num)) {
			if j == 0 {
				b.WriteString(numStyle.Render(num))
			} else {
				b.WriteString(strings.Repeat(" ", len(num)))
			}
			b.WriteString(textStyle.Render(line))
			b.WriteString("\n")
		}
	}

	return components.ContentCard("Recommendations", b.String(), cw)
}

func (a App) renderEligibleSchemesCard(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	bulletStyle := lipgloss.NewStyle().Foreground(t.Green)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	if len(a.adv.schemes) == 0 {
		b.WriteString(metaStyle.Render("No schemes match this profile."))
		b.WriteString("\n")
	}
	for _, s := range a.adv.schemes {
		b.WriteString(bulletStyle.Render("- "))
		b.WriteString(nameStyle.Render(truncStr(s.Name, innerW-2)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("Details on the Schemes tab."))

	return components.ContentCard(fmt.Sprintf("Eligible Schemes (%d)", len(a.adv.schemes)), b.String(), cw)
}

func (a App) renderSuggestedOptionsCard(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	retStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	nameW := innerW - 12
	if nameW < 10 {
		nameW = 10
	}

	var b strings.Builder
	for _, opt := range a.adv.options {
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(opt.Name, nameW))))
		b.WriteString(retStyle.Render(fmt.Sprintf("%11s", opt.ExpectedReturnPct)))
		b.WriteString("\n")
	}

	return components.ContentCard(fmt.Sprintf("Suggested Investments (%s risk)", a.adv.vals.risk), b.String(), cw)
}
