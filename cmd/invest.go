package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
)

var (
	flagInvestRisk      string
	flagInvestTaxSaving bool
	flagInvestBeginner  bool
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Compare investment options",
	RunE:  runInvest,
}

func init() {
	rootCmd.AddCommand(investCmd)
	investCmd.Flags().StringVarP(&flagInvestRisk, "risk", "r", "", "Filter by risk level (low, moderate, high)")
	investCmd.Flags().BoolVar(&flagInvestTaxSaving, "tax-saving", false, "Show only tax-saving options")
	investCmd.Flags().BoolVar(&flagInvestBeginner, "beginner", false, "Show only low-risk options for first-time investors")
}

func runInvest(_ *cobra.Command, _ []string) error {
	store, cfg, err := loadContent()
	if err != nil {
		return err
	}
	catalog := advisor.NewCatalog(store)

	var options []model.InvestmentOption
	var title string
	switch {
	case flagInvestTaxSaving:
		options = catalog.TaxSaving()
		title = "TAX-SAVING INVESTMENTS"
	case flagInvestRisk != "":
		risk, err := model.ParseRisk(flagInvestRisk)
		if err != nil {
			return err
		}
		options = catalog.ByRisk(risk)
		title = fmt.Sprintf("INVESTMENTS  %s risk", risk)
	case flagInvestBeginner:
		options = catalog.ForBeginner()
		title = "BEGINNER-FRIENDLY INVESTMENTS"
	default:
		options = catalog.CompareAll()
		title = "INVESTMENT OPTIONS"
	}

	if flagJSON {
		return printJSON(options)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := make([][]string, 0, len(options))
	for _, opt := range options {
		rows = append(rows, []string{
			opt.Name,
			string(opt.RiskLevel),
			opt.ExpectedReturnPct,
			cli.FormatLockIn(opt.LockInYears),
			cli.FormatTaxBenefit(opt.TaxBenefit),
			cli.FormatINR(opt.MinInvestment),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Investment", "Risk", "Return", "Lock-in", "Tax Benefit", "Min Invest"},
		Rows:    rows,
	}))

	printDisclaimer(cfg)
	return nil
}
