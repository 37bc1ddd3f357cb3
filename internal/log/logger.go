package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// fanoutHandler sends every record to all handlers that accept its level.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithGroup(name)
	}
	return next
}

// consoleLevel returns the minimum level printed to the console.
func consoleLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates the application logger.
//
// Records are printed as text to w at Warn and above, or Debug and above when
// verbose is set. When store is not nil, Info and above are also persisted to
// it. All attribute values are redacted before they reach either destination.
func NewLogger(w io.Writer, verbose bool, store LogAppender) *slog.Logger {
	console := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: consoleLevel(verbose),
	})
	if store == nil {
		return slog.New(NewRedactingHandler(console))
	}

	return slog.New(NewRedactingHandler(fanoutHandler{
		console,
		NewStoreHandler(store, slog.LevelInfo),
	}))
}

// NewJSONLogger is like NewLogger but prints JSON to w.
func NewJSONLogger(w io.Writer, verbose bool, store LogAppender) *slog.Logger {
	console := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: consoleLevel(verbose),
	})
	if store == nil {
		return slog.New(NewRedactingHandler(console))
	}

	return slog.New(NewRedactingHandler(fanoutHandler{
		console,
		NewStoreHandler(store, slog.LevelInfo),
	}))
}
