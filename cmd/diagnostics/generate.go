package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/beichenglangzi/Diagnostics/internal/config"
	"github.com/beichenglangzi/Diagnostics/internal/model"
	"github.com/beichenglangzi/Diagnostics/internal/report"
	"github.com/beichenglangzi/Diagnostics/internal/reporters"
)

// Output formats of the generate command.
const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatText     = "text"
)

// stdoutOutput makes the generate command write to stdout.
const stdoutOutput = "-"

// errTerminalOutput is returned when an HTML report would be dumped to a terminal.
var errTerminalOutput = errors.New("refusing to write an HTML report to a terminal (use -o <dir> or --force)")

// formatExtensions maps formats to the extension of the written file.
var formatExtensions = map[string]string{
	formatHTML:     ".html",
	formatMarkdown: ".md",
	formatJSON:     ".json",
	formatText:     ".txt",
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a diagnostics report",
		Long: `Generate composes a diagnostics report from the configured reporters.

By default the report contains four chapters, in this order:
- Information: application name, version and report identifier
- App System Metadata: runtime, operating system, host and locale
- Logs: the most recent records from the log store
- Settings: stored settings, with sensitive values redacted

The HTML report is written as DiagnosticsReport.html into the output
directory. Other formats are meant for pasting into issue trackers.

Examples:
  # Write DiagnosticsReport.html into the current directory
  diagnostics generate

  # Only logs and settings, in that order
  diagnostics generate -r logs -r settings -o ./out

  # Print a Markdown rendering to stdout
  diagnostics generate --format markdown -o -`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		`Output directory, or "-" for stdout (default: outputDir from config, else ".")`)
	cmd.Flags().StringP("format", "f", formatHTML,
		"Output format: html, markdown, json or text")
	cmd.Flags().StringSliceP("reporter", "r", nil,
		"Reporter to include, in order (repeatable): "+strings.Join(reporters.KindNames(), ", "))
	cmd.Flags().String("app-name", "",
		"Application name shown in the report title")
	cmd.Flags().Duration("timeout", config.DefaultReporterTimeout,
		"Maximum time a single reporter may take (0 disables)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of reporters run at the same time")
	cmd.Flags().Int("max-logs", config.DefaultMaxLogEntries,
		"Number of recent log records in the Logs chapter")
	cmd.Flags().Bool("force", false,
		"Write an HTML report to stdout even when it is a terminal")

	return cmd
}

// generateOptions are the generate-only flags.
type generateOptions struct {
	format string
	force  bool
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, opts, err := buildGenerateConfig(cmd)
	if err != nil {
		return err
	}

	a, err := openApp(cmd, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cmd.OutOrStdout(), a, opts)
}

// buildGenerateConfig overlays the generate flags on the loaded Config.
// Flags only override the config file when set explicitly.
func buildGenerateConfig(cmd *cobra.Command) (*config.Config, generateOptions, error) {
	var opts generateOptions

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, opts, err
	}

	flags := cmd.Flags()

	if flags.Changed("output") {
		if cfg.OutputDir, err = flags.GetString("output"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("reporter") {
		if cfg.Reporters, err = flags.GetStringSlice("reporter"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("app-name") {
		if cfg.AppName, err = flags.GetString("app-name"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.ReporterTimeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("max-logs") {
		if cfg.MaxLogEntries, err = flags.GetInt("max-logs"); err != nil {
			return nil, opts, err
		}
	}

	if opts.format, err = flags.GetString("format"); err != nil {
		return nil, opts, err
	}
	opts.format = strings.ToLower(opts.format)
	if _, ok := formatExtensions[opts.format]; !ok {
		return nil, opts, fmt.Errorf("unknown format %q: use html, markdown, json or text", opts.format)
	}

	if opts.force, err = flags.GetBool("force"); err != nil {
		return nil, opts, err
	}

	return cfg, opts, nil
}

// runGenerate builds the report and writes it to stdout or the output directory.
func runGenerate(ctx context.Context, stdout io.Writer, a *app, opts generateOptions) error {
	kinds, err := a.cfg.ReporterKinds()
	if err != nil {
		return err
	}
	list := reporters.Select(a.dependencies(), kinds...)

	generator := report.NewGenerator(
		report.WithAppName(a.cfg.AppName),
		report.WithConcurrency(a.cfg.Concurrency),
		report.WithReporterTimeout(a.cfg.ReporterTimeout),
		report.WithLogger(a.logger),
	)

	toStdout := a.cfg.OutputDir == stdoutOutput
	if toStdout && opts.format == formatHTML && !opts.force && isTerminal(stdout) {
		return errTerminalOutput
	}

	var data []byte
	if opts.format == formatHTML {
		rpt, err := generator.Generate(ctx, list)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		data = rpt.Data
	} else {
		doc, err := generator.Document(ctx, list)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		var sb strings.Builder
		if _, err := newDocumentWriter(&sb, opts.format).Write(doc); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		data = []byte(sb.String())
	}

	if toStdout {
		_, err := stdout.Write(data)
		return err
	}

	path, err := writeReportFile(a.cfg.OutputDir, reportFilename(opts.format), data)
	if err != nil {
		return err
	}

	a.logger.Info("diagnostics report written", "path", path, "format", opts.format)
	fmt.Fprintf(stdout, "Report written to %s\n", path)
	return nil
}

// newDocumentWriter returns the report.Writer for a non-HTML format.
func newDocumentWriter(w io.Writer, format string) report.Writer {
	switch format {
	case formatMarkdown:
		return report.NewMarkdownWriter(w)
	case formatJSON:
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	default:
		return report.NewTextWriter(w)
	}
}

// reportFilename returns the file name for format.
func reportFilename(format string) string {
	base := strings.TrimSuffix(model.ReportFilename, filepath.Ext(model.ReportFilename))
	return base + formatExtensions[format]
}

// writeReportFile writes data to dir/name with owner-only permissions.
// Reports may contain sensitive information.
func writeReportFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
