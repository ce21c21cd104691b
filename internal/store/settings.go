package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// SettingValue returns the stored value for a runtime setting, or fallback
// when the key has never been written.
func (s *Store) SettingValue(ctx context.Context, key, fallback string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	} else if err != nil {
		return "", fmt.Errorf("read setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting writes a runtime setting, creating or replacing the key.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	if err := s.execWithoutResultRetry(
		ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		formatTime(time.Now()),
	); err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

// PublishInterval reads the active publish spacing. The value is read fresh
// on every call so an operator change takes effect on the next slot
// calculation without a restart.
func (s *Store) PublishInterval(ctx context.Context, fallback time.Duration) (time.Duration, error) {
	raw, err := s.SettingValue(ctx, SettingPublishInterval, "")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return fallback, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return fallback, nil
	}
	return time.Duration(minutes) * time.Minute, nil
}
