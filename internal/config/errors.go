package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers match them with errors.Is.
var (
	// ErrEmptyAppName is returned when the application name is blank.
	// The name is part of the report title.
	ErrEmptyAppName = errors.New("invalid app name: must not be empty")

	// ErrInvalidTimeout is returned when the reporter timeout is negative.
	// Use 0 to let every reporter run to completion.
	ErrInvalidTimeout = errors.New("invalid reporter timeout: must be non-negative")

	// ErrInvalidConcurrency is returned when concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxLogEntries is returned when the log entry limit is not positive.
	ErrInvalidMaxLogEntries = errors.New("invalid max log entries: must be positive")

	// ErrInvalidMaxStoredLogs is returned when the stored log limit is negative.
	// Use 0 to keep every record.
	ErrInvalidMaxStoredLogs = errors.New("invalid max stored logs: must be non-negative")

	// ErrUnknownReporter is returned when the reporter list names a reporter
	// that does not exist.
	ErrUnknownReporter = errors.New("unknown reporter")
)
