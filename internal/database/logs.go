package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LogAttr is a single key/value attribute of a log record.
type LogAttr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LogEntry is a stored log record.
type LogEntry struct {
	ID      int64
	Time    time.Time
	Level   string
	Message string
	Attrs   []LogAttr
}

// String formats the entry as a single log line:
// "<RFC3339 time> <LEVEL> <message> key=value ...".
func (e LogEntry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Time.Format("2006-01-02T15:04:05.000Z07:00"))
	sb.WriteString(" ")
	sb.WriteString(e.Level)
	sb.WriteString(" ")
	sb.WriteString(e.Message)
	for _, a := range e.Attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString("=")
		if strings.ContainsAny(a.Value, " \t\n\"") {
			fmt.Fprintf(&sb, "%q", a.Value)
		} else {
			sb.WriteString(a.Value)
		}
	}
	return sb.String()
}

// AppendLog stores a log record and returns its ID.
func (s *Store) AppendLog(ctx context.Context, entry LogEntry) (int64, error) {
	attrsJSON, err := json.Marshal(entry.Attrs)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize log attributes: %w", err)
	}

	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO logs (timestamp, level, message, attrs) VALUES (?, ?, ?, ?)`,
		entry.Time.UnixNano(),
		entry.Level,
		entry.Message,
		string(attrsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert log record: %w", err)
	}

	return result.LastInsertId()
}

// Logs returns the most recent limit records, oldest first.
// A limit of zero or less returns every record.
func (s *Store) Logs(ctx context.Context, limit int) ([]LogEntry, error) {
	query := `SELECT id, timestamp, level, message, attrs FROM logs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var entry LogEntry
		var nanos int64
		var attrsJSON string

		if err := rows.Scan(&entry.ID, &nanos, &entry.Level, &entry.Message, &attrsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan log record: %w", err)
		}

		entry.Time = time.Unix(0, nanos)
		if attrsJSON != "" && attrsJSON != "null" {
			if err := json.Unmarshal([]byte(attrsJSON), &entry.Attrs); err != nil {
				return nil, fmt.Errorf("failed to parse log attributes: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}

	// Rows were read newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}

// CountLogs returns the number of stored log records.
func (s *Store) CountLogs(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}

// TrimLogs deletes all but the newest keep records and returns how many
// records were removed.
func (s *Store) TrimLogs(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM logs WHERE id NOT IN (SELECT id FROM logs ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to trim logs: %w", err)
	}

	return result.RowsAffected()
}

// ClearLogs deletes every log record.
func (s *Store) ClearLogs(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM logs`); err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	return nil
}
