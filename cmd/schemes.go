package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/config"
	"github.com/aumai/dhansetu/internal/model"
)

var (
	flagSchemesAge        int
	flagSchemesIncome     float64
	flagSchemesOccupation string
	flagSchemesName       string
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Find eligible government financial schemes",
	RunE:  runSchemes,
}

func init() {
	rootCmd.AddCommand(schemesCmd)
	schemesCmd.Flags().IntVarP(&flagSchemesAge, "age", "a", 0, "Your age")
	schemesCmd.Flags().Float64VarP(&flagSchemesIncome, "income", "i", 0, "Annual income in INR")
	schemesCmd.Flags().StringVarP(&flagSchemesOccupation, "occupation", "o", "", "Occupation (e.g., farmer, salaried, self-employed)")
	schemesCmd.Flags().StringVarP(&flagSchemesName, "name", "n", "", "Look up one scheme by name (partial match)")
}

var (
	schemeNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorGreen)
	schemeLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorTextMuted)
	schemeBodyStyle  = lipgloss.NewStyle().Foreground(cli.ColorText).Width(72)
)

func runSchemes(cmd *cobra.Command, _ []string) error {
	store, cfg, err := loadContent()
	if err != nil {
		return err
	}
	matcher := advisor.NewMatcher(store)

	if flagSchemesName != "" {
		return runSchemeLookup(matcher, cfg)
	}

	// Unset age and income stay nil so they never exclude a scheme.
	var age *int
	if cmd.Flags().Changed("age") {
		age = &flagSchemesAge
	}
	var income *float64
	if cmd.Flags().Changed("income") {
		income = &flagSchemesIncome
	}

	eligible := matcher.FindEligible(age, income, flagSchemesOccupation)

	if flagJSON {
		return printJSON(eligible)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ELIGIBLE SCHEMES  %d found", len(eligible))))

	for _, scheme := range eligible {
		fmt.Println()
		printScheme(scheme)
	}

	printDisclaimer(cfg)
	return nil
}

// runSchemeLookup handles --name. A miss is a normal outcome: null in JSON
// mode, a short message in text mode, exit 0 either way.
func runSchemeLookup(matcher *advisor.Matcher, cfg config.Config) error {
	scheme, ok := matcher.Find(flagSchemesName)
	if !ok {
		if flagJSON {
			return printJSON(nil)
		}
		fmt.Printf("\n  No scheme matching %q.\n", flagSchemesName)
		return nil
	}

	if flagJSON {
		return printJSON(scheme)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCHEME DETAILS"))
	fmt.Println()
	printScheme(scheme)
	printDisclaimer(cfg)
	return nil
}

func printScheme(s model.Scheme) {
	fmt.Printf("  %s\n", schemeNameStyle.Render(s.Name))
	if s.Ministry != "" {
		fmt.Printf("  %s\n", conceptMetaStyle.Render(s.Ministry))
	}
	fmt.Println()
	fmt.Println(indentBlock(schemeBodyStyle.Render(s.Description), 2))
	fmt.Println()
	fmt.Printf("  %s %s\n", schemeLabelStyle.Render("Eligibility:"), s.Eligibility)
	fmt.Printf("  %s %s\n", schemeLabelStyle.Render("Benefits:"), s.Benefits)
	fmt.Printf("  %s %s\n", schemeLabelStyle.Render("How to apply:"), s.HowToApply)
}
