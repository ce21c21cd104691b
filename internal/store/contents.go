package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const contentColumns = "id, topic_id, content_type, status, script_text, script_json, diagram_path, audio_path, video_path, duration_seconds, error_message, created_at, updated_at"

func scanContent(scanner interface{ Scan(dest ...any) error }) (*ContentItem, error) {
	var (
		id         int64
		topicID    int64
		ctype      string
		status     string
		scriptText sql.NullString
		scriptJSON sql.NullString
		diagram    sql.NullString
		audio      sql.NullString
		video      sql.NullString
		duration   sql.NullInt64
		errMsg     sql.NullString
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&id, &topicID, &ctype, &status,
		&scriptText, &scriptJSON, &diagram, &audio, &video,
		&duration, &errMsg, &createdRaw, &updatedRaw,
	); err != nil {
		return nil, err
	}

	item := &ContentItem{
		ID:              id,
		TopicID:         topicID,
		ContentType:     ContentType(ctype),
		Status:          ContentStatus(status),
		ScriptText:      scriptText.String,
		ScriptJSON:      scriptJSON.String,
		DiagramPath:     diagram.String,
		AudioPath:       audio.String,
		VideoPath:       video.String,
		DurationSeconds: duration.Int64,
		ErrorMessage:    errMsg.String,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		item.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		item.UpdatedAt = updated
	}
	return item, nil
}

// NewContent inserts a content item in GENERATING state for a topic.
func (s *Store) NewContent(ctx context.Context, topicID int64, contentType ContentType) (*ContentItem, error) {
	timestamp := formatTime(time.Now())
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO contents (topic_id, content_type, status, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)`,
		topicID,
		contentType,
		StatusGenerating,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert content: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetContent(ctx, id)
}

// GetContent fetches a content item by identifier.
func (s *Store) GetContent(ctx context.Context, id int64) (*ContentItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contentColumns+` FROM contents WHERE id = ?`, id)
	item, err := scanContent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return item, nil
}

// UpdateContent persists changes to an existing content item.
func (s *Store) UpdateContent(ctx context.Context, item *ContentItem) error {
	if item == nil {
		return errors.New("content item is nil")
	}
	item.UpdatedAt = time.Now().UTC()
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE contents
         SET topic_id = ?, content_type = ?, status = ?, script_text = ?, script_json = ?,
             diagram_path = ?, audio_path = ?, video_path = ?, duration_seconds = ?,
             error_message = ?, updated_at = ?
         WHERE id = ?`,
		item.TopicID,
		item.ContentType,
		item.Status,
		nullableString(item.ScriptText),
		nullableString(item.ScriptJSON),
		nullableString(item.DiagramPath),
		nullableString(item.AudioPath),
		nullableString(item.VideoPath),
		nullableInt64(item.DurationSeconds),
		nullableString(item.ErrorMessage),
		formatTime(item.UpdatedAt),
		item.ID,
	); err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// TransitionContent moves a content item into a new status, enforcing the
// forward-only lifecycle, and persists the item.
func (s *Store) TransitionContent(ctx context.Context, item *ContentItem, next ContentStatus) error {
	if item == nil {
		return errors.New("content item is nil")
	}
	if !item.Status.CanTransition(next) {
		return fmt.Errorf("content %d: invalid status transition %s -> %s", item.ID, item.Status, next)
	}
	item.Status = next
	return s.UpdateContent(ctx, item)
}

// ContentFilter narrows ListContents results. Zero values mean "any".
type ContentFilter struct {
	Status      ContentStatus
	ContentType ContentType
	TopicID     int64
	Limit       uint64
}

// ListContents returns content items matching the filter, newest first.
func (s *Store) ListContents(ctx context.Context, filter ContentFilter) ([]*ContentItem, error) {
	builder := sq.Select(contentColumns).
		From("contents").
		OrderBy("created_at DESC")
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.ContentType != "" {
		builder = builder.Where(sq.Eq{"content_type": filter.ContentType})
	}
	if filter.TopicID != 0 {
		builder = builder.Where(sq.Eq{"topic_id": filter.TopicID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build content query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var items []*ContentItem
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReadyForQueue returns READY content items with a rendered diagram in
// creation order, the input set for a bulk queue operation.
func (s *Store) ReadyForQueue(ctx context.Context) ([]*ContentItem, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+contentColumns+` FROM contents
         WHERE status = ? AND diagram_path IS NOT NULL
         ORDER BY created_at ASC`,
		StatusReady,
	)
	if err != nil {
		return nil, fmt.Errorf("ready for queue: %w", err)
	}
	defer rows.Close()

	var items []*ContentItem
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RecentTemplateIDs extracts template identifiers from the most recently
// created script payloads, newest first. The result seeds the template pool's
// freshness-aware selection; it is advisory, not a lock.
func (s *Store) RecentTemplateIDs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT script_json FROM contents
         WHERE script_json IS NOT NULL
         ORDER BY created_at DESC
         LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent template ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var partial struct {
			TemplateID string `json:"template_id"`
		}
		if err := json.Unmarshal([]byte(payload), &partial); err != nil {
			continue
		}
		if partial.TemplateID != "" {
			ids = append(ids, partial.TemplateID)
		}
	}
	return ids, rows.Err()
}
