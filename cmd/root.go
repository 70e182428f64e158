package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/cli"
	"github.com/aumai/dhansetu/internal/config"
	"github.com/aumai/dhansetu/internal/content"
)

var (
	flagJSON        bool
	flagContentPack string
)

var rootCmd = &cobra.Command{
	Use:     "dhansetu",
	Short:   "Financial literacy toolkit for India",
	Long:    "Browse financial concepts, plan a monthly budget, check government scheme eligibility, compare investment options, and get step-by-step UPI guidance.",
	Version: "0.1.0",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of formatted text")
	rootCmd.PersistentFlags().StringVar(&flagContentPack, "content-pack", "", "TOML file with extra concepts, schemes, investments, or guides")
}

// loadContent builds the content store. The pack path comes from the
// --content-pack flag, the DHANSETU_CONTENT env var, or the config file,
// in that order; empty means builtins only.
func loadContent() (*content.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	packPath := flagContentPack
	if packPath == "" {
		packPath = config.ContentPackPath(cfg)
	}
	if packPath == "" {
		return content.Default(), cfg, nil
	}

	store, err := content.Load(packPath)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

const disclaimerText = "IMPORTANT: Interest rates and returns mentioned are indicative and subject to change. Past performance does not guarantee future results. This tool does not provide SEBI-registered investment advisory. Verify all financial information with official sources before making decisions."

var disclaimerStyle = lipgloss.NewStyle().Foreground(cli.ColorOrange).Width(76)

// printDisclaimer appends the advisory note to text output. JSON output
// never carries it, and hide_disclaimer in the config suppresses it.
func printDisclaimer(cfg config.Config) {
	if cfg.General.HideDisclaimer {
		return
	}
	fmt.Println()
	fmt.Println(disclaimerStyle.Render(disclaimerText))
}
