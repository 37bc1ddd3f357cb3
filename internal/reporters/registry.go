package reporters

import (
	"context"
	"log/slog"
	"time"

	"github.com/beichenglangzi/Diagnostics/internal/database"
	"github.com/beichenglangzi/Diagnostics/internal/report"
)

const (
	// DefaultMaxLogEntries is the number of log records shown when
	// Dependencies.MaxLogEntries is not set.
	DefaultMaxLogEntries = 500

	// readTimeout bounds a single read from a log or settings source.
	readTimeout = 5 * time.Second
)

// LogSource reads stored log records. *database.Store implements it.
type LogSource interface {
	Logs(ctx context.Context, limit int) ([]database.LogEntry, error)
}

// SettingsSource reads stored settings. *database.Store implements it.
type SettingsSource interface {
	Settings(ctx context.Context) ([]database.Setting, error)
}

// Dependencies are the collaborators the built-in reporters read from.
// Every field is optional.
type Dependencies struct {
	// AppName and AppVersion describe the application being reported on.
	AppName    string
	AppVersion string

	// DataDir is the directory whose free space is reported.
	DataDir string

	// LogSource feeds the Logs chapter.
	LogSource LogSource

	// SettingsSource feeds the Settings chapter.
	SettingsSource SettingsSource

	// MaxLogEntries limits the Logs chapter. Zero or less means
	// DefaultMaxLogEntries.
	MaxLogEntries int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives warnings about sources that could not be read.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// withDefaults returns a copy of d with unset fields filled in.
func (d Dependencies) withDefaults() Dependencies {
	if d.AppName == "" {
		d.AppName = report.DefaultAppName()
	}
	if d.AppVersion == "" {
		d.AppVersion = "unknown"
	}
	if d.MaxLogEntries <= 0 {
		d.MaxLogEntries = DefaultMaxLogEntries
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// New returns the built-in reporter for k, or nil if k is not a Kind.
func New(k Kind, deps Dependencies) report.Reporter {
	deps = deps.withDefaults()

	switch k {
	case GeneralInfo:
		return newGeneralInfo(deps)
	case AppSystemMetadata:
		return newAppSystemMetadata(deps)
	case Logs:
		return newLogs(deps)
	case Settings:
		return newSettings(deps)
	default:
		return nil
	}
}

// Defaults returns the default registry: general info, app and system
// metadata, logs and settings, in that order.
func Defaults(deps Dependencies) []report.Reporter {
	return Select(deps, AllKinds()...)
}

// Select returns the built-in reporters for kinds in the given order.
// Duplicates are kept and unknown kinds are skipped.
func Select(deps Dependencies, kinds ...Kind) []report.Reporter {
	list := make([]report.Reporter, 0, len(kinds))
	for _, k := range kinds {
		if r := New(k, deps); r != nil {
			list = append(list, r)
		}
	}
	return list
}
