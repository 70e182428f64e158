package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aumai/dhansetu/internal/config"
	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	store := content.Default()

	fmt.Println()
	fmt.Println("  Welcome to dhansetu!")
	fmt.Println()
	fmt.Printf("  Built-in library: %d concepts, %d schemes, %d investment options, %d UPI guides.\n\n",
		len(store.Concepts()), len(store.Schemes()), len(store.Investments()), len(store.UPITopics()))

	// 1. Content pack
	fmt.Println("  1. Content pack (TOML) to extend the built-in tables")
	fmt.Println("     Leave empty to use the built-ins only.")
	if cfg.General.ContentPack != "" {
		fmt.Printf("     Current: %s\n", cfg.General.ContentPack)
	}
	fmt.Print("     > ")
	pack, _ := reader.ReadString('\n')
	pack = strings.TrimSpace(pack)
	if pack != "" {
		if _, err := content.Load(pack); err != nil {
			fmt.Printf("     Could not load the pack: %v\n", err)
			fmt.Println("     Keeping the previous setting.")
		} else {
			cfg.General.ContentPack = pack
		}
	}
	fmt.Println()

	// 2. Disclaimer
	fmt.Println("  2. Show the educational disclaimer under command output?")
	fmt.Println("     (1) Yes [default]")
	fmt.Println("     (2) No")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	cfg.General.HideDisclaimer = strings.TrimSpace(choice) == "2"
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	for i, name := range theme.Names() {
		if name == cfg.Appearance.Theme {
			fmt.Printf("     (%d) %s [current]\n", i+1, name)
		} else {
			fmt.Printf("     (%d) %s\n", i+1, name)
		}
	}
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(themeChoice)); err == nil && n >= 1 && n <= len(theme.All) {
		cfg.Appearance.Theme = theme.All[n-1].Name
	} else if cfg.Appearance.Theme == "" {
		cfg.Appearance.Theme = theme.All[0].Name
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `dhansetu setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
