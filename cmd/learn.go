package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/advisor"
	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/model"
)

var (
	flagLearnTopic  string
	flagLearnLevel  string
	flagLearnSearch string
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Learn financial concepts by topic and level",
	RunE:  runLearn,
}

func init() {
	rootCmd.AddCommand(learnCmd)
	learnCmd.Flags().StringVarP(&flagLearnTopic, "topic", "t", "", "Financial topic (savings, insurance, investment, credit, taxation, digital_payments)")
	learnCmd.Flags().StringVarP(&flagLearnLevel, "level", "l", "", "Literacy level (beginner, intermediate, advanced)")
	learnCmd.Flags().StringVarP(&flagLearnSearch, "search", "s", "", "Search titles and explanations by keyword")
}

var (
	conceptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent)
	conceptMetaStyle  = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	conceptBodyStyle  = lipgloss.NewStyle().Foreground(cli.ColorText).Width(72)
	conceptTermStyle  = lipgloss.NewStyle().Foreground(cli.ColorPurple)
)

func runLearn(_ *cobra.Command, _ []string) error {
	store, cfg, err := loadContent()
	if err != nil {
		return err
	}
	library := advisor.NewLibrary(store)

	// Search wins over filters; both filters together narrow to the pair.
	var concepts []model.Concept
	switch {
	case flagLearnSearch != "":
		concepts = library.Search(flagLearnSearch)
	case flagLearnTopic != "" && flagLearnLevel != "":
		topic, err := model.ParseTopic(flagLearnTopic)
		if err != nil {
			return err
		}
		level, err := model.ParseLevel(flagLearnLevel)
		if err != nil {
			return err
		}
		concepts = library.ByTopicAndLevel(topic, level)
	case flagLearnTopic != "":
		topic, err := model.ParseTopic(flagLearnTopic)
		if err != nil {
			return err
		}
		concepts = library.ByTopic(topic)
	case flagLearnLevel != "":
		level, err := model.ParseLevel(flagLearnLevel)
		if err != nil {
			return err
		}
		concepts = library.ByLevel(level)
	default:
		concepts = library.All()
	}

	if flagJSON {
		return printJSON(concepts)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(learnTitle()))

	for _, c := range concepts {
		fmt.Println()
		printConcept(c)
	}

	fmt.Printf("\n  Found %d concept(s).\n", len(concepts))
	printDisclaimer(cfg)
	return nil
}

func learnTitle() string {
	parts := []string{"FINANCIAL CONCEPTS"}
	if flagLearnSearch != "" {
		parts = append(parts, fmt.Sprintf("matching %q", flagLearnSearch))
	}
	if flagLearnTopic != "" {
		parts = append(parts, flagLearnTopic)
	}
	if flagLearnLevel != "" {
		parts = append(parts, flagLearnLevel)
	}
	return strings.Join(parts, "  ")
}

func printConcept(c model.Concept) {
	fmt.Printf("  %s\n", conceptTitleStyle.Render(c.Title))
	fmt.Printf("  %s\n\n", conceptMetaStyle.Render(fmt.Sprintf("Topic: %s | Level: %s", c.Topic, c.Level)))
	fmt.Println(indentBlock(conceptBodyStyle.Render(c.Explanation), 2))

	if len(c.Examples) > 0 {
		fmt.Println()
		fmt.Println("  Examples:")
		for _, ex := range c.Examples {
			fmt.Printf("    - %s\n", ex)
		}
	}
	if len(c.KeyTerms) > 0 {
		fmt.Printf("\n  Key terms: %s\n", conceptTermStyle.Render(strings.Join(c.KeyTerms, ", ")))
	}
}

// indentBlock prefixes every line of a multi-line block.
func indentBlock(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
