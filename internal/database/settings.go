package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrSettingNotFound is returned when a setting key does not exist.
var ErrSettingNotFound = errors.New("setting not found")

// ErrEmptySettingKey is returned when a setting is written with an empty key.
var ErrEmptySettingKey = errors.New("setting key must not be empty")

// Setting is a stored key/value pair.
type Setting struct {
	Key       string
	Value     any
	UpdatedAt time.Time
}

// SetSetting stores value under key, replacing any previous value.
// The value must be encodable by msgpack.
func (s *Store) SetSetting(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptySettingKey
	}

	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %q: %w", key, err)
	}

	query := `
	INSERT INTO settings (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, data, time.Now().UnixNano()); err != nil {
		return fmt.Errorf("failed to store setting %q: %w", key, err)
	}

	return nil
}

// Setting returns the value stored under key.
// It returns ErrSettingNotFound if the key does not exist.
func (s *Store) Setting(ctx context.Context, key string) (any, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return decodeValue(key, data)
}

// Settings returns every stored setting sorted by key.
func (s *Store) Settings(ctx context.Context) ([]Setting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var setting Setting
		var data []byte
		var nanos int64

		if err := rows.Scan(&setting.Key, &data, &nanos); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}

		setting.Value, err = decodeValue(setting.Key, data)
		if err != nil {
			return nil, err
		}
		setting.UpdatedAt = time.Unix(0, nanos)

		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return settings, nil
}

// DeleteSetting removes key. It returns ErrSettingNotFound if the key does
// not exist.
func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}

	return nil
}

// decodeValue decodes a msgpack encoded setting value.
func decodeValue(key string, data []byte) (any, error) {
	var value any
	if err := msgpack.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode setting %q: %w", key, err)
	}
	return value, nil
}
