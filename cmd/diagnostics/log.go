package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	applog "github.com/beichenglangzi/Diagnostics/internal/log"
)

// NewLogCmd creates the log command.
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and inspect log records in the store",
		Long: `Log manages the log records that the Logs chapter of a report shows.

Examples:
  # Record a warning with two attributes
  diagnostics log add --level warn "upload retried" attempt=2 file=notes.txt

  # Show the 20 most recent records
  diagnostics log show -n 20

  # Remove every record
  diagnostics log clear`,
	}

	cmd.AddCommand(newLogAddCmd())
	cmd.AddCommand(newLogShowCmd())
	cmd.AddCommand(newLogClearCmd())

	return cmd
}

func newLogAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <message> [key=value...]",
		Short: "Record a log message",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLogAddCmd,
	}
	cmd.Flags().StringP("level", "l", "info", "Log level: debug, info, warn or error")
	return cmd
}

func newLogShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the most recent log records",
		Args:  cobra.NoArgs,
		RunE:  runLogShowCmd,
	}
	cmd.Flags().IntP("lines", "n", 50, "Number of records to print (0 prints all)")
	return cmd
}

func newLogClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every log record",
		Args:  cobra.NoArgs,
		RunE:  runLogClearCmd,
	}
}

// parseLevel converts a level name into an slog.Level.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: use debug, info, warn or error", name)
	}
	return level, nil
}

// parseAttrs converts key=value arguments into slog attribute pairs.
func parseAttrs(args []string) ([]any, error) {
	attrs := make([]any, 0, len(args)*2)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q: expected key=value", arg)
		}
		attrs = append(attrs, key, value)
	}
	return attrs, nil
}

// runLogAddCmd executes the log add command.
func runLogAddCmd(cmd *cobra.Command, args []string) error {
	levelName, err := cmd.Flags().GetString("level")
	if err != nil {
		return err
	}
	level, err := parseLevel(levelName)
	if err != nil {
		return err
	}
	attrs, err := parseAttrs(args[1:])
	if err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		// The application logger persists Info and above only, so explicitly
		// added records go straight to a store handler at the requested level.
		ctx := cmd.Context()
		recorder := applog.NewRedactingHandler(applog.NewStoreHandler(a.store, level))
		if err := recorder.Handle(ctx, newRecord(level, args[0], attrs)); err != nil {
			return fmt.Errorf("failed to record log: %w", err)
		}

		return trimLogs(ctx, a)
	})
}

// newRecord creates a record with the current time.
func newRecord(level slog.Level, msg string, attrs []any) slog.Record {
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.Add(attrs...)
	return r
}

// trimLogs drops records beyond the configured maximum.
func trimLogs(ctx context.Context, a *app) error {
	if a.cfg.MaxStoredLogs <= 0 {
		return nil
	}
	removed, err := a.store.TrimLogs(ctx, a.cfg.MaxStoredLogs)
	if err != nil {
		return fmt.Errorf("failed to trim logs: %w", err)
	}
	if removed > 0 {
		a.logger.Debug("trimmed log records", "removed", removed)
	}
	return nil
}

// runLogShowCmd executes the log show command.
func runLogShowCmd(cmd *cobra.Command, _ []string) error {
	lines, err := cmd.Flags().GetInt("lines")
	if err != nil {
		return err
	}

	return withApp(cmd, func(a *app) error {
		entries, err := a.store.Logs(cmd.Context(), lines)
		if err != nil {
			return fmt.Errorf("failed to read logs: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No logs have been recorded.")
			return nil
		}
		for _, entry := range entries {
			fmt.Fprintln(out, entry.String())
		}
		return nil
	})
}

// runLogClearCmd executes the log clear command.
func runLogClearCmd(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(a *app) error {
		count, err := a.store.CountLogs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to count logs: %w", err)
		}
		if err := a.store.ClearLogs(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear logs: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d log records.\n", count)
		return nil
	})
}
