package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/beichenglangzi/Diagnostics/internal/report"
	"github.com/beichenglangzi/Diagnostics/internal/reporters"
)

// Default configuration values.
const (
	// AppName is the tool name used for XDG directory paths.
	AppName = "diagnostics"

	// DefaultReporterTimeout bounds a single reporter. A reporter that reads
	// a large log store can take a while, but a report should never hang.
	DefaultReporterTimeout = 10 * time.Second

	// DefaultConcurrency collects chapters one after another.
	DefaultConcurrency = 1

	// DefaultMaxLogEntries is the number of log records shown in the Logs chapter.
	DefaultMaxLogEntries = reporters.DefaultMaxLogEntries

	// DefaultMaxStoredLogs is the number of log records kept in the store.
	// Older records are trimmed after every write from the CLI.
	DefaultMaxStoredLogs = 10000
)

// Config holds all configuration options for the diagnostics tool.
// It is populated from defaults, the config file and CLI flags, in that
// order, and passed down explicitly.
type Config struct {
	// AppName is the application name shown in the report title.
	AppName string

	// AppVersion is the application version shown in the report.
	AppVersion string

	// DataDir is the directory holding the log and settings database.
	// Defaults to the XDG data directory.
	DataDir string

	// OutputDir is where generated reports are written.
	// "-" writes the report to stdout.
	OutputDir string

	// Verbose enables debug log output.
	Verbose bool

	// ReporterTimeout bounds a single reporter. Zero disables the bound.
	ReporterTimeout time.Duration

	// Concurrency is the number of reporters that may run at once.
	Concurrency int

	// MaxLogEntries is the number of log records shown in the Logs chapter.
	MaxLogEntries int

	// MaxStoredLogs is the number of log records kept in the store.
	// Zero keeps every record.
	MaxStoredLogs int

	// Reporters overrides the default reporter list. Names are those of
	// reporters.Kind, in chapter order. Empty means the defaults.
	Reporters []string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		AppName:         report.DefaultAppName(),
		DataDir:         XDGDataDir(),
		OutputDir:       ".",
		ReporterTimeout: DefaultReporterTimeout,
		Concurrency:     DefaultConcurrency,
		MaxLogEntries:   DefaultMaxLogEntries,
		MaxStoredLogs:   DefaultMaxStoredLogs,
	}
}

// XDGDataDir returns the XDG data directory for the tool.
// On Linux: ~/.local/share/diagnostics
// On macOS: ~/Library/Application Support/diagnostics
// On Windows: %LOCALAPPDATA%\diagnostics
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the tool.
// On Linux: ~/.config/diagnostics
// On macOS: ~/Library/Application Support/diagnostics
// On Windows: %APPDATA%\diagnostics
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ReporterKinds parses Reporters. An empty list yields the default kinds.
func (c *Config) ReporterKinds() ([]reporters.Kind, error) {
	if len(c.Reporters) == 0 {
		return reporters.AllKinds(), nil
	}
	kinds := make([]reporters.Kind, 0, len(c.Reporters))
	for _, name := range c.Reporters {
		k, err := reporters.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownReporter, name,
				strings.Join(reporters.KindNames(), ", "))
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return ErrEmptyAppName
	}

	if c.ReporterTimeout < 0 {
		return ErrInvalidTimeout
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.MaxLogEntries <= 0 {
		return ErrInvalidMaxLogEntries
	}

	if c.MaxStoredLogs < 0 {
		return ErrInvalidMaxStoredLogs
	}

	if _, err := c.ReporterKinds(); err != nil {
		return err
	}

	return nil
}
