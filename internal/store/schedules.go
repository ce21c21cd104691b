package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const scheduleColumns = "id, content_id, platform, scheduled_at, published_at, status, platform_post_id, error_message, created_at"

func scanSchedule(scanner interface{ Scan(dest ...any) error }) (*ScheduleRecord, error) {
	var (
		id           int64
		contentID    int64
		platform     string
		scheduledRaw string
		publishedRaw sql.NullString
		status       string
		postID       sql.NullString
		errMsg       sql.NullString
		createdRaw   string
	)
	if err := scanner.Scan(
		&id, &contentID, &platform, &scheduledRaw, &publishedRaw,
		&status, &postID, &errMsg, &createdRaw,
	); err != nil {
		return nil, err
	}

	rec := &ScheduleRecord{
		ID:             id,
		ContentID:      contentID,
		Platform:       platform,
		Status:         ScheduleStatus(status),
		PlatformPostID: postID.String,
		ErrorMessage:   errMsg.String,
	}
	if scheduled, err := parseTimeString(scheduledRaw); err == nil {
		rec.ScheduledAt = scheduled
	}
	if publishedRaw.Valid {
		if published, err := parseTimeString(publishedRaw.String); err == nil {
			rec.PublishedAt = &published
		}
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		rec.CreatedAt = created
	}
	return rec, nil
}

// NewSchedule inserts a PENDING schedule for a content item.
func (s *Store) NewSchedule(ctx context.Context, contentID int64, platform string, scheduledAt time.Time) (*ScheduleRecord, error) {
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO schedules (content_id, platform, scheduled_at, status, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		contentID,
		platform,
		formatTime(scheduledAt),
		SchedulePending,
		formatTime(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetSchedule(ctx, id)
}

// GetSchedule fetches a schedule record by identifier.
func (s *Store) GetSchedule(ctx context.Context, id int64) (*ScheduleRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = ?`, id)
	rec, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return rec, nil
}

// UpdateSchedule persists changes to an existing schedule record.
func (s *Store) UpdateSchedule(ctx context.Context, rec *ScheduleRecord) error {
	if rec == nil {
		return errors.New("schedule record is nil")
	}
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE schedules
         SET content_id = ?, platform = ?, scheduled_at = ?, published_at = ?,
             status = ?, platform_post_id = ?, error_message = ?
         WHERE id = ?`,
		rec.ContentID,
		rec.Platform,
		formatTime(rec.ScheduledAt),
		nullableTime(rec.PublishedAt),
		rec.Status,
		nullableString(rec.PlatformPostID),
		nullableString(rec.ErrorMessage),
		rec.ID,
	); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

// LastPendingScheduledAt returns the latest scheduled_at among PENDING
// schedules across all content, or the zero time when there is none. The
// planner anchors the next slot here so publishes stay spaced.
func (s *Store) LastPendingScheduledAt(ctx context.Context) (time.Time, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT scheduled_at FROM schedules
         WHERE status = ?
         ORDER BY scheduled_at DESC
         LIMIT 1`,
		SchedulePending,
	)
	var raw string
	if err := row.Scan(&raw); errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	} else if err != nil {
		return time.Time{}, fmt.Errorf("last pending schedule: %w", err)
	}
	return parseTimeString(raw)
}

// LatestPendingScheduleForContent returns the most recent PENDING schedule
// for a content item, or nil when none exists.
func (s *Store) LatestPendingScheduleForContent(ctx context.Context, contentID int64) (*ScheduleRecord, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE content_id = ? AND status = ?
         ORDER BY scheduled_at DESC
         LIMIT 1`,
		contentID,
		SchedulePending,
	)
	rec, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest pending schedule: %w", err)
	}
	return rec, nil
}

// SchedulesForContent lists schedules for a content item, newest first.
func (s *Store) SchedulesForContent(ctx context.Context, contentID int64) ([]*ScheduleRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE content_id = ?
         ORDER BY scheduled_at DESC`,
		contentID,
	)
	if err != nil {
		return nil, fmt.Errorf("schedules for content: %w", err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

// PendingSchedules lists all PENDING schedules in publish order.
func (s *Store) PendingSchedules(ctx context.Context) ([]*ScheduleRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE status = ?
         ORDER BY scheduled_at ASC`,
		SchedulePending,
	)
	if err != nil {
		return nil, fmt.Errorf("pending schedules: %w", err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

// ScheduleHistory lists non-pending schedules, most recent outcome first.
func (s *Store) ScheduleHistory(ctx context.Context, limit int) ([]*ScheduleRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+scheduleColumns+` FROM schedules
         WHERE status != ?
         ORDER BY scheduled_at DESC
         LIMIT ?`,
		SchedulePending,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("schedule history: %w", err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

func collectSchedules(rows *sql.Rows) ([]*ScheduleRecord, error) {
	var records []*ScheduleRecord
	for rows.Next() {
		rec, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
