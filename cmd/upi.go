package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
)

var flagUPITopic string

var upiCmd = &cobra.Command{
	Use:   "upi",
	Short: "Step-by-step UPI guidance",
	Long:  "Get UPI guidance on setup, security, dispute resolution, or transaction limits.",
	RunE:  runUPI,
}

func init() {
	rootCmd.AddCommand(upiCmd)
	upiCmd.Flags().StringVarP(&flagUPITopic, "topic", "t", "", "Guide topic (setup, security, disputes, limits)")
	_ = upiCmd.MarkFlagRequired("topic")
}

var (
	upiTipStyle  = lipgloss.NewStyle().Foreground(cli.ColorGreen)
	upiWarnStyle = lipgloss.NewStyle().Foreground(cli.ColorRed)
)

func runUPI(_ *cobra.Command, _ []string) error {
	store, cfg, err := loadContent()
	if err != nil {
		return err
	}
	guide := advisor.NewUPIGuide(store)

	entry, ok := guide.Entry(flagUPITopic)
	if !ok {
		return fmt.Errorf("unknown topic %q (available: %s)", flagUPITopic, strings.Join(guide.Topics(), ", "))
	}

	if flagJSON {
		return printJSON(entry)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(entry.Topic)))
	fmt.Println()

	for _, step := range entry.Steps {
		fmt.Printf("  %s\n", step)
	}

	if len(entry.Tips) > 0 {
		fmt.Println("\n  Tips:")
		for _, tip := range entry.Tips {
			fmt.Printf("  %s %s\n", upiTipStyle.Render("*"), tip)
		}
	}

	if len(entry.Warnings) > 0 {
		fmt.Println("\n  Warnings:")
		for _, warn := range entry.Warnings {
			fmt.Printf("  %s %s\n", upiWarnStyle.Render("!"), warn)
		}
	}

	printDisclaimer(cfg)
	return nil
}
