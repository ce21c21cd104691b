package planner

import (
	"context"
	"log/slog"
	"time"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/pubqueue"
	"slate/internal/services"
	"slate/internal/store"
)

// Planner decides when queued content publishes and hands jobs to the
// durable queue. Spacing comes from the publish interval setting, read fresh
// on every slot calculation so operator changes apply without a restart.
type Planner struct {
	store    *store.Store
	queue    *pubqueue.Queue
	logger   *slog.Logger
	platform string

	fallbackInterval time.Duration
	fallbackLead     time.Duration
}

// New builds a planner with defaults taken from config.
func New(cfg *config.Config, st *store.Store, q *pubqueue.Queue, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Planner{
		store:            st,
		queue:            q,
		logger:           logging.NewComponentLogger(logger, "planner"),
		platform:         cfg.Publish.Platform,
		fallbackInterval: time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute,
		fallbackLead:     time.Duration(cfg.Scheduler.FallbackLeadMinutes) * time.Minute,
	}
}

// NextTime computes the publish slot for a new schedule. An explicit time is
// used as-is. Otherwise the slot lands one interval after the latest pending
// schedule, never in the past; with no pending schedules the slot is a short
// lead from now.
func (p *Planner) NextTime(ctx context.Context, now time.Time, explicit *time.Time) (time.Time, error) {
	if explicit != nil {
		return *explicit, nil
	}

	lastPending, err := p.store.LastPendingScheduledAt(ctx)
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrCollaborator, "planner", "next-time", "read pending anchor", err)
	}
	if lastPending.IsZero() {
		return now.Add(p.fallbackLead), nil
	}

	interval, err := p.store.PublishInterval(ctx, p.fallbackInterval)
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrCollaborator, "planner", "next-time", "read interval", err)
	}

	anchor := lastPending
	if now.After(anchor) {
		anchor = now
	}
	return anchor.Add(interval), nil
}

// QueueContent schedules a single content item for publishing. The item must
// be publishable (READY or PUBLISHED with a rendered diagram); otherwise
// nothing is mutated. On success a PENDING schedule exists, a job is
// enqueued, and the content is QUEUED.
func (p *Planner) QueueContent(ctx context.Context, contentID int64, platform, caption string, explicitAt *time.Time) (*store.ScheduleRecord, error) {
	item, err := p.store.GetContent(ctx, contentID)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "planner", "queue", "load content", err)
	}
	if item == nil {
		return nil, services.Wrap(services.ErrNotFound, "planner", "queue", "content not found", nil)
	}
	if !item.Publishable() {
		return nil, services.Wrap(services.ErrValidation, "planner", "queue",
			"content must be ready or published with a rendered diagram", nil)
	}
	if platform == "" {
		platform = p.platform
	}

	scheduledAt, err := p.NextTime(ctx, time.Now(), explicitAt)
	if err != nil {
		return nil, err
	}

	rec, err := p.store.NewSchedule(ctx, item.ID, platform, scheduledAt)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "planner", "queue", "create schedule", err)
	}

	if err := p.enqueue(ctx, item, rec, caption); err != nil {
		return rec, err
	}

	if item.Status == store.StatusReady {
		if err := p.store.TransitionContent(ctx, item, store.StatusQueued); err != nil {
			return rec, services.Wrap(services.ErrCollaborator, "planner", "queue", "mark queued", err)
		}
	}

	p.logger.Info("content queued",
		logging.Int64(logging.FieldContentID, item.ID),
		logging.Int64(logging.FieldScheduleID, rec.ID),
		logging.String(logging.FieldPlatform, platform),
		logging.Time("scheduled_at", scheduledAt))
	return rec, nil
}

// QueueAllReady schedules every READY item with a diagram, oldest first,
// spacing each one interval after the previous so the feed stays evenly
// paced.
func (p *Planner) QueueAllReady(ctx context.Context, platform string) ([]*store.ScheduleRecord, error) {
	items, err := p.store.ReadyForQueue(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "planner", "queue-all", "list ready content", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	if platform == "" {
		platform = p.platform
	}

	now := time.Now()
	base, err := p.store.LastPendingScheduledAt(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "planner", "queue-all", "read pending anchor", err)
	}
	if base.IsZero() || now.After(base) {
		base = now
	}
	interval, err := p.store.PublishInterval(ctx, p.fallbackInterval)
	if err != nil {
		return nil, services.Wrap(services.ErrCollaborator, "planner", "queue-all", "read interval", err)
	}

	records := make([]*store.ScheduleRecord, 0, len(items))
	for i, item := range items {
		scheduledAt := base.Add(time.Duration(i+1) * interval)
		rec, err := p.store.NewSchedule(ctx, item.ID, platform, scheduledAt)
		if err != nil {
			return records, services.Wrap(services.ErrCollaborator, "planner", "queue-all", "create schedule", err)
		}
		if err := p.enqueue(ctx, item, rec, ""); err != nil {
			return records, err
		}
		if err := p.store.TransitionContent(ctx, item, store.StatusQueued); err != nil {
			return records, services.Wrap(services.ErrCollaborator, "planner", "queue-all", "mark queued", err)
		}
		records = append(records, rec)
	}

	p.logger.Info("queued all ready content", logging.Int("count", len(records)))
	return records, nil
}

func (p *Planner) enqueue(ctx context.Context, item *store.ContentItem, rec *store.ScheduleRecord, caption string) error {
	job := pubqueue.Job{
		ContentID:   item.ID,
		ScheduleID:  rec.ID,
		Platform:    rec.Platform,
		Caption:     Caption(item, caption),
		ImagePath:   item.DiagramPath,
		ScheduledAt: rec.ScheduledAt,
	}
	if _, err := p.queue.Enqueue(ctx, job); err != nil {
		return services.Wrap(services.ErrCollaborator, "planner", "queue", "enqueue job", err)
	}
	return nil
}
