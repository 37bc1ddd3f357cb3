package log

import (
	"context"
	"log/slog"

	"github.com/beichenglangzi/Diagnostics/internal/database"
)

// LogAppender persists log records. *database.Store implements it.
type LogAppender interface {
	AppendLog(ctx context.Context, entry database.LogEntry) (int64, error)
}

// StoreHandler is an slog.Handler that writes records to a LogAppender.
// Group names are joined to attribute keys with dots.
type StoreHandler struct {
	appender LogAppender
	level    slog.Leveler
	attrs    []database.LogAttr
	prefix   string
}

// NewStoreHandler creates a StoreHandler that keeps records at or above level.
// A nil level keeps Info and above.
func NewStoreHandler(appender LogAppender, level slog.Leveler) *StoreHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &StoreHandler{appender: appender, level: level}
}

// Enabled reports whether level is at or above the handler's minimum.
func (h *StoreHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle stores r.
func (h *StoreHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := database.LogEntry{
		Time:    r.Time,
		Level:   r.Level.String(),
		Message: r.Message,
		Attrs:   make([]database.LogAttr, 0, len(h.attrs)+r.NumAttrs()),
	}
	entry.Attrs = append(entry.Attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		entry.Attrs = appendAttr(entry.Attrs, h.prefix, a)
		return true
	})

	// Logging must not fail because the caller's context is done.
	_, err := h.appender.AppendLog(context.WithoutCancel(ctx), entry)
	return err
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *StoreHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}
	return next
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *StoreHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *StoreHandler) clone() *StoreHandler {
	return &StoreHandler{
		appender: h.appender,
		level:    h.level,
		attrs:    append([]database.LogAttr(nil), h.attrs...),
		prefix:   h.prefix,
	}
}

// appendAttr flattens a into dst.
func appendAttr(dst []database.LogAttr, prefix string, a slog.Attr) []database.LogAttr {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, groupPrefix, ga)
		}
		return dst
	}

	return append(dst, database.LogAttr{
		Key:   prefix + a.Key,
		Value: a.Value.String(),
	})
}
