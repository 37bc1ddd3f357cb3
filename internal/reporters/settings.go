package reporters

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/beichenglangzi/Diagnostics/internal/database"

	applog "github.com/beichenglangzi/Diagnostics/internal/log"
	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// SettingsTitle is the title of the settings chapter.
const SettingsTitle = "Settings"

const (
	noSettingsSourceText = "Settings are not available."
	noSettingsText       = "No settings have been stored."
	settingsFailedText   = "Settings could not be read."
)

// settings reports every stored setting, sorted by key.
// Values of sensitive keys are redacted.
type settings struct {
	source SettingsSource
	logger *slog.Logger
}

func newSettings(deps Dependencies) *settings {
	return &settings{
		source: deps.SettingsSource,
		logger: deps.Logger,
	}
}

// Name implements report.Named.
func (r *settings) Name() string {
	return SettingsTitle
}

// Report implements report.Reporter.
func (r *settings) Report() model.Chapter {
	if r.source == nil {
		return model.Placeholder(SettingsTitle, noSettingsSourceText)
	}

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	stored, err := r.source.Settings(ctx)
	if err != nil {
		r.logger.Warn("cannot read settings for report", "error", err)
		return model.Placeholder(SettingsTitle, settingsFailedText)
	}
	if len(stored) == 0 {
		return model.Placeholder(SettingsTitle, noSettingsText)
	}

	stored = slices.Clone(stored)
	slices.SortStableFunc(stored, func(a, b database.Setting) int {
		return strings.Compare(a.Key, b.Key)
	})

	table := make(model.Table, 0, len(stored))
	for _, s := range stored {
		table = table.Add(s.Key, applog.Redact(s.Key, fmt.Sprintf("%v", s.Value)))
	}
	return model.NewChapter(SettingsTitle, table)
}
