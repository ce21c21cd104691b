package store

import (
	"strings"
	"time"
)

// ContentType distinguishes quiz/problem posts from educational explainers.
type ContentType string

const (
	TypeProblem ContentType = "problem"
	TypeConcept ContentType = "concept"
)

// ParseContentType converts a string into a known ContentType.
func ParseContentType(value string) (ContentType, bool) {
	switch ContentType(strings.ToLower(strings.TrimSpace(value))) {
	case TypeProblem:
		return TypeProblem, true
	case TypeConcept:
		return TypeConcept, true
	default:
		return "", false
	}
}

// ContentStatus represents the lifecycle of a content item.
type ContentStatus string

const (
	StatusDraft      ContentStatus = "draft"
	StatusGenerating ContentStatus = "generating"
	StatusReady      ContentStatus = "ready"
	StatusQueued     ContentStatus = "queued"
	StatusPublished  ContentStatus = "published"
	StatusFailed     ContentStatus = "failed"
)

var contentStatusRank = map[ContentStatus]int{
	StatusDraft:      0,
	StatusGenerating: 1,
	StatusReady:      2,
	StatusQueued:     3,
	StatusPublished:  4,
	StatusFailed:     5,
}

// ParseContentStatus converts a string into a known ContentStatus.
func ParseContentStatus(value string) (ContentStatus, bool) {
	normalized := ContentStatus(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := contentStatusRank[normalized]
	return normalized, ok
}

// IsTerminal reports whether a status permits no further transitions.
func (s ContentStatus) IsTerminal() bool {
	return s == StatusPublished || s == StatusFailed
}

// CanTransition reports whether a content item may move from s to next.
// Status only advances forward, except that any non-terminal status may jump
// to FAILED.
func (s ContentStatus) CanTransition(next ContentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusFailed {
		return true
	}
	from, ok := contentStatusRank[s]
	if !ok {
		return false
	}
	to, ok := contentStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// ScheduleStatus represents the lifecycle of a publish attempt record.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	SchedulePublished ScheduleStatus = "published"
	ScheduleFailed    ScheduleStatus = "failed"
)

// Topic groups content items by subject.
type Topic struct {
	ID          int64
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}

// ContentItem represents a single generated post unit persisted in SQLite.
type ContentItem struct {
	ID              int64
	TopicID         int64
	ContentType     ContentType
	Status          ContentStatus
	ScriptText      string
	ScriptJSON      string
	DiagramPath     string
	AudioPath       string
	VideoPath       string
	DurationSeconds int64
	ErrorMessage    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SetFailed marks the item as failed with the given error message.
func (c *ContentItem) SetFailed(message string) {
	c.Status = StatusFailed
	c.ErrorMessage = message
}

// Publishable reports whether a queue operation may act on this item:
// the item must be READY or PUBLISHED and carry a rendered diagram.
func (c *ContentItem) Publishable() bool {
	if c.Status != StatusReady && c.Status != StatusPublished {
		return false
	}
	return strings.TrimSpace(c.DiagramPath) != ""
}

// ScheduleRecord is one row of the append-only publish audit trail.
type ScheduleRecord struct {
	ID             int64
	ContentID      int64
	Platform       string
	ScheduledAt    time.Time
	PublishedAt    *time.Time
	Status         ScheduleStatus
	PlatformPostID string
	ErrorMessage   string
	CreatedAt      time.Time
}

// SettingPublishInterval is the runtime key controlling publish spacing.
const SettingPublishInterval = "publish_interval_minutes"
