package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PublishJob is one durable queue entry. Payload is an opaque JSON blob owned
// by the queue layer; the store only handles visibility bookkeeping.
type PublishJob struct {
	ID            int64
	MessageID     string
	Payload       string
	VisibleAt     time.Time
	ReceiptHandle string
	ReceiveCount  int64
	EnqueuedAt    time.Time
}

// InsertJob appends a job that becomes receivable once visibleAt passes.
// The generated message identifier is returned.
func (s *Store) InsertJob(ctx context.Context, payload string, visibleAt time.Time) (string, error) {
	messageID := uuid.NewString()
	if _, err := s.execWithRetry(
		ctx,
		`INSERT INTO publish_jobs (message_id, payload, visible_at, receive_count, enqueued_at)
         VALUES (?, ?, ?, 0, ?)`,
		messageID,
		payload,
		formatTime(visibleAt),
		formatTime(time.Now()),
	); err != nil {
		return "", fmt.Errorf("insert publish job: %w", err)
	}
	return messageID, nil
}

// LeaseDueJobs atomically claims up to max jobs whose visibility window has
// opened. Each claimed job gets a fresh receipt handle and is hidden for the
// visibility timeout, so a second consumer cannot claim it until the lease
// lapses.
func (s *Store) LeaseDueJobs(ctx context.Context, max int, visibility time.Duration) ([]*PublishJob, error) {
	if max <= 0 {
		return nil, nil
	}
	now := time.Now()
	nowStr := formatTime(now)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id FROM publish_jobs
         WHERE visible_at <= ?
         ORDER BY visible_at ASC
         LIMIT ?`,
		nowStr,
		max,
	)
	if err != nil {
		return nil, fmt.Errorf("scan due jobs: %w", err)
	}
	var candidates []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		candidates = append(candidates, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var leased []*PublishJob
	for _, id := range candidates {
		receipt := uuid.NewString()
		res, err := s.execWithRetry(
			ctx,
			`UPDATE publish_jobs
             SET receipt_handle = ?, visible_at = ?, receive_count = receive_count + 1
             WHERE id = ? AND visible_at <= ?`,
			receipt,
			formatTime(now.Add(visibility)),
			id,
			nowStr,
		)
		if err != nil {
			return nil, fmt.Errorf("lease job %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("lease job %d: %w", id, err)
		}
		if affected == 0 {
			// Raced with another consumer; skip.
			continue
		}

		job, err := s.jobByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if job != nil {
			leased = append(leased, job)
		}
	}
	return leased, nil
}

// DeleteJobByReceipt removes a job only while the given lease is still held.
// A stale receipt deletes nothing, mirroring at-least-once queue semantics.
func (s *Store) DeleteJobByReceipt(ctx context.Context, receiptHandle string) (bool, error) {
	res, err := s.execWithRetry(
		ctx,
		`DELETE FROM publish_jobs WHERE receipt_handle = ?`,
		receiptHandle,
	)
	if err != nil {
		return false, fmt.Errorf("delete publish job: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// JobCounts reports how many jobs are currently receivable and how many are
// delayed or leased.
func (s *Store) JobCounts(ctx context.Context) (visible int64, hidden int64, err error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT
            COUNT(CASE WHEN visible_at <= ? THEN 1 END),
            COUNT(CASE WHEN visible_at > ? THEN 1 END)
         FROM publish_jobs`,
		formatTime(time.Now()),
		formatTime(time.Now()),
	)
	if err := row.Scan(&visible, &hidden); err != nil {
		return 0, 0, fmt.Errorf("count publish jobs: %w", err)
	}
	return visible, hidden, nil
}

func (s *Store) jobByID(ctx context.Context, id int64) (*PublishJob, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, message_id, payload, visible_at, receipt_handle, receive_count, enqueued_at
         FROM publish_jobs WHERE id = ?`,
		id,
	)
	var (
		job        PublishJob
		visibleRaw string
		receipt    *string
		enqueueRaw string
	)
	if err := row.Scan(&job.ID, &job.MessageID, &job.Payload, &visibleRaw, &receipt, &job.ReceiveCount, &enqueueRaw); err != nil {
		return nil, fmt.Errorf("read job %d: %w", id, err)
	}
	if receipt != nil {
		job.ReceiptHandle = *receipt
	}
	if visible, err := parseTimeString(visibleRaw); err == nil {
		job.VisibleAt = visible
	}
	if enqueued, err := parseTimeString(enqueueRaw); err == nil {
		job.EnqueuedAt = enqueued
	}
	return &job, nil
}
