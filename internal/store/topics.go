package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const topicColumns = "id, name, category, description, created_at"

func scanTopic(scanner interface{ Scan(dest ...any) error }) (*Topic, error) {
	var (
		id          int64
		name        string
		category    string
		description sql.NullString
		createdRaw  string
	)
	if err := scanner.Scan(&id, &name, &category, &description, &createdRaw); err != nil {
		return nil, err
	}
	topic := &Topic{
		ID:          id,
		Name:        name,
		Category:    category,
		Description: description.String,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		topic.CreatedAt = created
	}
	return topic, nil
}

// FindTopic returns the topic matching (name, category), or nil when absent.
func (s *Store) FindTopic(ctx context.Context, name, category string) (*Topic, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+topicColumns+` FROM topics WHERE name = ? AND category = ? LIMIT 1`,
		name, category,
	)
	topic, err := scanTopic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find topic: %w", err)
	}
	return topic, nil
}

// FindOrCreateTopic returns the topic for (name, category), creating it when
// missing. Repeated calls never create a second row; a concurrent insert is
// resolved by re-reading after a unique constraint failure.
func (s *Store) FindOrCreateTopic(ctx context.Context, name, category, description string) (*Topic, error) {
	if topic, err := s.FindTopic(ctx, name, category); err != nil || topic != nil {
		return topic, err
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO topics (name, category, description, created_at) VALUES (?, ?, ?, ?)`,
		name,
		category,
		nullableString(description),
		formatTime(time.Now()),
	)
	if err != nil {
		// Lost a race with another insert of the same (name, category).
		if topic, findErr := s.FindTopic(ctx, name, category); findErr == nil && topic != nil {
			return topic, nil
		}
		return nil, fmt.Errorf("insert topic: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.topicByID(ctx, id)
}

// GetTopic returns the topic with the given id, or nil when absent.
func (s *Store) GetTopic(ctx context.Context, id int64) (*Topic, error) {
	return s.topicByID(ctx, id)
}

func (s *Store) topicByID(ctx context.Context, id int64) (*Topic, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+topicColumns+` FROM topics WHERE id = ?`, id)
	topic, err := scanTopic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

// ListTopics returns all topics, newest first.
func (s *Store) ListTopics(ctx context.Context) ([]*Topic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+topicColumns+` FROM topics ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []*Topic
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}
