package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
)

var advisorCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Interactive financial checkup",
	Long:  "Answer a few questions to get a budget plan, eligible government schemes, and investment suggestions for your profile.",
	RunE:  runAdvisor,
}

func init() {
	rootCmd.AddCommand(advisorCmd)
}

// advisorReport is the combined result for --json mode.
type advisorReport struct {
	Plan        model.BudgetPlan         `json:"plan"`
	Schemes     []model.Scheme           `json:"schemes"`
	Investments []model.InvestmentOption `json:"investments"`
}

func runAdvisor(_ *cobra.Command, _ []string) error {
	store, cfg, err := loadContent()
	if err != nil {
		return err
	}

	var (
		incomeIn     string
		ageIn        string
		occupationIn string
		riskIn       = string(model.RiskLow)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income (Rs)").
				Placeholder("25000").
				Value(&incomeIn).
				Validate(validateIncomeInput),
			huh.NewInput().
				Title("Age").
				Placeholder("press Enter to skip").
				Value(&ageIn).
				Validate(validateAgeInput),
			huh.NewInput().
				Title("Occupation").
				Placeholder("farmer, salaried, self-employed, ... (Enter to skip)").
				Value(&occupationIn),
			huh.NewSelect[string]().
				Title("Risk appetite").
				Options(
					huh.NewOption("Low - protect my money", string(model.RiskLow)),
					huh.NewOption("Moderate - some ups and downs are fine", string(model.RiskModerate)),
					huh.NewOption("High - growth over safety", string(model.RiskHigh)),
				).
				Value(&riskIn),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	income, err := strconv.ParseFloat(strings.TrimSpace(incomeIn), 64)
	if err != nil {
		return fmt.Errorf("parsing income: %w", err)
	}
	plan, err := advisor.Plan(income)
	if err != nil {
		return err
	}

	var age *int
	if trimmed := strings.TrimSpace(ageIn); trimmed != "" {
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return fmt.Errorf("parsing age: %w", err)
		}
		age = &v
	}

	occupation := strings.TrimSpace(occupationIn)
	schemes := advisor.NewMatcher(store).FindEligible(age, &income, occupation)
	suggestions := advisor.NewCatalog(store).ByRisk(model.RiskLevel(riskIn))

	if flagJSON {
		return printJSON(advisorReport{Plan: plan, Schemes: schemes, Investments: suggestions})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR FINANCIAL CHECKUP"))

	fmt.Printf("\n  Budget for %s/month\n\n", cli.FormatINR(plan.Income))
	for _, cat := range []model.BudgetCategory{model.CategoryNeeds, model.CategoryWants, model.CategorySavings} {
		amount := plan.Allocations[string(cat)]
		fmt.Printf("  %-8s │ %12s │ %4s\n", cat, cli.FormatINR(amount), cli.FormatWholePercent(amount/plan.Income))
	}
	fmt.Printf("\n  Emergency fund goal: %d months of expenses\n", plan.EmergencyFundMonths)
	for i, rec := range plan.Recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}

	fmt.Printf("\n  Eligible schemes (%d)\n\n", len(schemes))
	for _, s := range schemes {
		fmt.Printf("  %s %s\n", schemeNameStyle.Render("-"), s.Name)
	}
	fmt.Println(conceptMetaStyle.Render("\n  Run `dhansetu schemes --name <scheme>` for details."))

	fmt.Printf("\n  Suggested investments (%s risk)\n\n", riskIn)
	rows := make([][]string, 0, len(suggestions))
	for _, opt := range suggestions {
		rows = append(rows, []string{
			opt.Name,
			opt.ExpectedReturnPct,
			cli.FormatLockIn(opt.LockInYears),
			cli.FormatINR(opt.MinInvestment),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Investment", "Return", "Lock-in", "Min Invest"},
		Rows:    rows,
	}))

	printDisclaimer(cfg)
	return nil
}

func validateIncomeInput(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v <= 0 {
		return errors.New("income must be positive")
	}
	return nil
}

func validateAgeInput(s string) error {
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
