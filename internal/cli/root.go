package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "habitd",
		Short: "habitd - daily habit and class schedule tracker",
		Long: `habitd tracks a daily checklist, water intake, health progress and a
weekly class schedule, with a 90-day challenge grid and desktop reminders.

Run without a subcommand to open the interactive TUI.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (TOML)")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(streaksCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
