// Package cmd implements the dhansetu CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ContentPack != "" {
		fmt.Printf("    Content pack:    %s\n", cfg.General.ContentPack)
	} else {
		fmt.Println("    Content pack:    not set (built-in tables only)")
	}
	fmt.Printf("    Hide disclaimer: %v\n", cfg.General.HideDisclaimer)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if env := os.Getenv("DHANSETU_CONTENT"); env != "" {
		fmt.Printf("  DHANSETU_CONTENT is set and overrides the content pack: %s\n", env)
		fmt.Println()
	}

	fmt.Println("  Run `dhansetu setup` to reconfigure.")
	return nil
}
