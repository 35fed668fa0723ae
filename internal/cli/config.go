package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidl-dev/vidl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vidl configuration",
}

// vidl config show - show current config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()

		fmt.Println("Current configuration:")
		fmt.Printf("  OutputDir:      %s\n", orDefault(cfg.OutputDir, "(current directory)"))
		fmt.Printf("  MergeContainer: %s\n", cfg.MergeContainer)
		fmt.Printf("  Config:         %s\n", config.SavePath())
		if !config.Exists() {
			fmt.Println("\nNo config file written yet; values above are defaults.")
		}
	},
}

// vidl config path - show config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.SavePath())
	},
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
