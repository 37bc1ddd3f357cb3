// Package log provides the application's slog setup: redaction of sensitive
// attribute values and persistence of log records so they can be included in
// diagnostics reports.
//
// # Redaction
//
// RedactingHandler wraps any slog.Handler and masks attribute values whose
// key looks sensitive (passwords, tokens, cookies, credentials) or whose value
// matches a known secret format (JWT, bearer tokens, private key markers).
// The same rules are exposed through Redact so that other parts of the
// application, such as the settings chapter of a report, can mask values the
// same way.
//
// # Persistence
//
// StoreHandler writes every record to a LogAppender, normally a
// *database.Store. The Logs reporter later reads the most recent records back.
//
// # Usage
//
//	store, _ := database.Open(dataDir, database.DefaultOptions())
//	logger := log.NewLogger(os.Stderr, verbose, store)
//	slog.SetDefault(logger)
//
//	logger.Info("upload finished", "token", "abc") // token=***REDACTED***
package log
