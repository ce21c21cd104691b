package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/pubqueue"
	"slate/internal/publish"
	"slate/internal/store"
)

// Worker drains the publish queue: it receives due jobs, posts them to the
// platform, and finalizes the content and schedule rows. Delivery is
// at-least-once; a job is only deleted once its outcome has been recorded.
type Worker struct {
	store      *store.Store
	queue      *pubqueue.Queue
	poster     publish.Poster
	logger     *slog.Logger
	maxReceive int
	errorRetry time.Duration
}

// New builds a worker.
func New(cfg *config.Config, st *store.Store, q *pubqueue.Queue, poster publish.Poster, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Worker{
		store:      st,
		queue:      q,
		poster:     poster,
		logger:     logging.NewComponentLogger(logger, "worker"),
		maxReceive: cfg.Queue.MaxReceive,
		errorRetry: time.Duration(cfg.Queue.ErrorRetrySeconds) * time.Second,
	}
}

// Run polls until the context is cancelled. Each receive long-polls, so an
// idle queue does not spin.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started", logging.String(logging.FieldPlatform, w.poster.Platform()))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker stopping")
			return ctx.Err()
		default:
		}

		messages, err := w.queue.Receive(ctx, w.maxReceive)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("worker stopping")
				return ctx.Err()
			}
			w.logger.Error("receive failed", logging.Error(err))
			select {
			case <-ctx.Done():
				w.logger.Info("worker stopping")
				return ctx.Err()
			case <-time.After(w.errorRetry):
			}
			continue
		}
		for _, msg := range messages {
			w.ProcessMessage(ctx, msg)
		}
	}
}

// ProcessMessage handles one received job. It returns true when the message
// was consumed (deleted) and false when it was left for redelivery.
func (w *Worker) ProcessMessage(ctx context.Context, msg pubqueue.Message) bool {
	job := msg.Job
	log := w.logger.With(
		logging.String(logging.FieldMessageID, msg.MessageID),
		logging.Int64(logging.FieldContentID, job.ContentID),
		logging.Int64(logging.FieldScheduleID, job.ScheduleID))

	// Not due yet: touch nothing and skip the delete. The visibility lease
	// lapses and the queue redelivers the job later.
	if job.ScheduledAt.After(time.Now()) {
		log.Debug("job not due yet", logging.Time("scheduled_at", job.ScheduledAt))
		return false
	}

	if job.Platform != w.poster.Platform() {
		log.Warn("unsupported platform", logging.String(logging.FieldPlatform, job.Platform))
		w.finalizeFailure(ctx, job, fmt.Sprintf("unsupported platform: %s", job.Platform))
		w.deleteMessage(ctx, msg)
		return true
	}

	post, err := w.poster.PostImage(ctx, job.ImagePath, job.Caption)
	if err != nil {
		log.Error("publish failed", logging.Error(err))
		w.finalizeFailure(ctx, job, err.Error())
		w.deleteMessage(ctx, msg)
		return true
	}

	log.Info("published", logging.String("post_id", post.ID))
	w.finalizeSuccess(ctx, job, post)
	w.deleteMessage(ctx, msg)
	return true
}

func (w *Worker) finalizeSuccess(ctx context.Context, job pubqueue.Job, post publish.Post) {
	item, err := w.store.GetContent(ctx, job.ContentID)
	if err != nil || item == nil {
		w.logger.Error("load content for finalize", logging.Error(err))
	} else if item.Status != store.StatusPublished {
		if err := w.store.TransitionContent(ctx, item, store.StatusPublished); err != nil {
			w.logger.Error("mark content published", logging.Error(err))
		}
	}

	rec := w.scheduleFor(ctx, job)
	if rec == nil {
		return
	}
	now := time.Now()
	rec.Status = store.SchedulePublished
	rec.PublishedAt = &now
	rec.PlatformPostID = post.ID
	rec.ErrorMessage = ""
	if err := w.store.UpdateSchedule(ctx, rec); err != nil {
		w.logger.Error("mark schedule published", logging.Error(err))
	}
}

func (w *Worker) finalizeFailure(ctx context.Context, job pubqueue.Job, message string) {
	item, err := w.store.GetContent(ctx, job.ContentID)
	if err != nil || item == nil {
		w.logger.Error("load content for finalize", logging.Error(err))
	} else if !item.Status.IsTerminal() {
		item.SetFailed(message)
		if err := w.store.UpdateContent(ctx, item); err != nil {
			w.logger.Error("mark content failed", logging.Error(err))
		}
	}

	rec := w.scheduleFor(ctx, job)
	if rec == nil {
		return
	}
	rec.Status = store.ScheduleFailed
	rec.ErrorMessage = message
	if err := w.store.UpdateSchedule(ctx, rec); err != nil {
		w.logger.Error("mark schedule failed", logging.Error(err))
	}
}

// scheduleFor resolves the schedule the job belongs to, falling back to the
// content's most recent pending schedule when the direct reference is gone.
func (w *Worker) scheduleFor(ctx context.Context, job pubqueue.Job) *store.ScheduleRecord {
	rec, err := w.store.GetSchedule(ctx, job.ScheduleID)
	if err != nil {
		w.logger.Error("load schedule", logging.Error(err))
		return nil
	}
	if rec != nil {
		return rec
	}
	rec, err = w.store.LatestPendingScheduleForContent(ctx, job.ContentID)
	if err != nil {
		w.logger.Error("load fallback schedule", logging.Error(err))
		return nil
	}
	if rec == nil {
		w.logger.Warn("no schedule to finalize",
			logging.Int64(logging.FieldContentID, job.ContentID),
			logging.Int64(logging.FieldScheduleID, job.ScheduleID))
	}
	return rec
}

func (w *Worker) deleteMessage(ctx context.Context, msg pubqueue.Message) {
	if err := w.queue.Delete(ctx, msg.ReceiptHandle); err != nil {
		w.logger.Error("delete message", logging.Error(err))
	}
}
