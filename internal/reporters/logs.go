package reporters

import (
	"context"
	"log/slog"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// LogsTitle is the title of the logs chapter.
const LogsTitle = "Logs"

const (
	noLogSourceText = "Logs are not available."
	noLogsText      = "No logs have been recorded yet."
	logsFailedText  = "Logs could not be read."
)

// logs reports the most recent stored log records, oldest first.
type logs struct {
	source LogSource
	limit  int
	logger *slog.Logger
}

func newLogs(deps Dependencies) *logs {
	return &logs{
		source: deps.LogSource,
		limit:  deps.MaxLogEntries,
		logger: deps.Logger,
	}
}

// Name implements report.Named.
func (r *logs) Name() string {
	return LogsTitle
}

// Report implements report.Reporter.
func (r *logs) Report() model.Chapter {
	if r.source == nil {
		return model.Placeholder(LogsTitle, noLogSourceText)
	}

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	entries, err := r.source.Logs(ctx, r.limit)
	if err != nil {
		r.logger.Warn("cannot read logs for report", "error", err)
		return model.Placeholder(LogsTitle, logsFailedText)
	}
	if len(entries) == 0 {
		return model.Placeholder(LogsTitle, noLogsText)
	}

	lines := make(model.Code, len(entries))
	for i, entry := range entries {
		lines[i] = entry.String()
	}
	return model.NewChapter(LogsTitle, lines)
}
