package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
)

var flagBudgetIncome float64

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Generate a budget plan from your monthly income",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
	budgetCmd.Flags().Float64VarP(&flagBudgetIncome, "income", "i", 0, "Monthly income in INR")
	_ = budgetCmd.MarkFlagRequired("income")
}

func runBudget(_ *cobra.Command, _ []string) error {
	_, cfg, err := loadContent()
	if err != nil {
		return err
	}

	plan, err := advisor.Plan(flagBudgetIncome)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(plan)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET PLAN  %s/month", cli.FormatINR(plan.Income))))
	fmt.Println()

	categories := []model.BudgetCategory{model.CategoryNeeds, model.CategoryWants, model.CategorySavings}

	maxAmount := 0.0
	for _, cat := range categories {
		if amount := plan.Allocations[string(cat)]; amount > maxAmount {
			maxAmount = amount
		}
	}

	for _, cat := range categories {
		amount := plan.Allocations[string(cat)]
		fmt.Printf("  %-8s │ %12s │ %4s │ %s\n",
			cat,
			cli.FormatINR(amount),
			cli.FormatWholePercent(amount/plan.Income),
			cli.RenderHorizontalBar(amount, maxAmount, 30))
	}

	fmt.Printf("\n  Savings target: %s/month\n", cli.FormatINR(plan.SavingsTarget))
	fmt.Printf("  Emergency fund goal: %d months of expenses\n", plan.EmergencyFundMonths)

	fmt.Println("\n  Recommendations:")
	for i, rec := range plan.Recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}

	printDisclaimer(cfg)
	return nil
}
