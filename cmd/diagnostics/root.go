package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the diagnostics CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnostics",
		Short: "Compose diagnostics reports from logs, settings and system metadata",
		Long: `diagnostics builds a single self-contained HTML report describing the state of
an application: general information, app and system metadata, recent logs and
stored settings. Logs and settings are kept in a local SQLite store that the
log and settings commands write to.

The report is meant to be attached to a support request. Sensitive values such
as passwords and tokens are redacted before they reach the store or the report.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .diagnostics in current or home directory)")
	cmd.PersistentFlags().StringP("data-dir", "D", "",
		"Directory of the log and settings store (default: XDG data directory)")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewLogCmd())
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
