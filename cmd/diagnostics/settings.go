package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/beichenglangzi/Diagnostics/internal/database"
	applog "github.com/beichenglangzi/Diagnostics/internal/log"
)

// NewSettingsCmd creates the settings command.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the key/value settings shown in reports",
		Long: `Settings manages the persisted key/value settings that the Settings chapter
of a report lists. Values are typed: "true", "42", "1.5" and "[a, b]" are
stored as a boolean, an integer, a float and a list. Use --string to store
the text as is.

Examples:
  diagnostics settings set theme dark
  diagnostics settings set launch.count 42
  diagnostics settings get theme
  diagnostics settings list
  diagnostics settings delete theme`,
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting",
		Args:  cobra.ExactArgs(2),
		RunE:  runSettingsSetCmd,
	}
	setCmd.Flags().BoolP("string", "s", false, "Store the value as a string")

	cmd.AddCommand(setCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a setting",
		Args:  cobra.ExactArgs(1),
		RunE:  runSettingsGetCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every setting sorted by key",
		Args:  cobra.NoArgs,
		RunE:  runSettingsListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "delete <key>",
		Aliases: []string{"rm"},
		Short:   "Remove a setting",
		Args:    cobra.ExactArgs(1),
		RunE:    runSettingsDeleteCmd,
	})

	return cmd
}

// parseSettingValue interprets text as a YAML scalar or flow collection.
// Text that does not parse, or parses to null, is kept as a string.
func parseSettingValue(text string) any {
	var value any
	if err := yaml.Unmarshal([]byte(text), &value); err != nil || value == nil {
		return text
	}
	if _, isMap := value.(map[string]any); isMap && !strings.HasPrefix(strings.TrimSpace(text), "{") {
		// "a: b" is a map in YAML but almost certainly meant as text here.
		return text
	}
	return value
}

// runSettingsSetCmd executes the settings set command.
func runSettingsSetCmd(cmd *cobra.Command, args []string) error {
	asString, err := cmd.Flags().GetBool("string")
	if err != nil {
		return err
	}

	var value any = args[1]
	if !asString {
		value = parseSettingValue(args[1])
	}

	return withApp(cmd, func(a *app) error {
		if err := a.store.SetSetting(cmd.Context(), args[0], value); err != nil {
			return fmt.Errorf("failed to store setting: %w", err)
		}
		// The setting key is the attribute key so redaction applies to it.
		a.logger.Info("setting stored", slog.String(args[0], fmt.Sprintf("%v", value)))
		return nil
	})
}

// runSettingsGetCmd executes the settings get command.
func runSettingsGetCmd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		value, err := a.store.Setting(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, database.ErrSettingNotFound) {
				return fmt.Errorf("setting %q does not exist", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
		return nil
	})
}

// runSettingsListCmd executes the settings list command.
// Sensitive values are redacted the same way as in reports.
func runSettingsListCmd(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(a *app) error {
		settings, err := a.store.Settings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(settings) == 0 {
			fmt.Fprintln(out, "No settings have been stored.")
			return nil
		}
		for _, s := range settings {
			fmt.Fprintf(out, "%s = %s\n", s.Key, applog.Redact(s.Key, fmt.Sprintf("%v", s.Value)))
		}
		return nil
	})
}

// runSettingsDeleteCmd executes the settings delete command.
func runSettingsDeleteCmd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		if err := a.store.DeleteSetting(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, database.ErrSettingNotFound) {
				return fmt.Errorf("setting %q does not exist", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	})
}
