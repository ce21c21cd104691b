package pubqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/services"
	"slate/internal/store"
)

// Job is the payload carried by one queue message. ScheduledAt is the
// intended publish time; when it lies beyond the native delay window the
// message becomes visible early and the consumer re-checks due-ness.
type Job struct {
	ContentID   int64     `json:"content_id"`
	ScheduleID  int64     `json:"schedule_id"`
	Platform    string    `json:"platform"`
	Caption     string    `json:"caption"`
	ImagePath   string    `json:"image_path"`
	ScheduledAt time.Time `json:"scheduled_at"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

// Message is one received queue entry. The receipt handle is only valid
// while the visibility lease holds.
type Message struct {
	MessageID     string
	ReceiptHandle string
	ReceiveCount  int64
	Job           Job
}

// Attributes summarizes queue depth.
type Attributes struct {
	Visible int64
	Hidden  int64
}

// Queue provides at-least-once delivery of publish jobs over the store's
// durable job table.
type Queue struct {
	store      *store.Store
	logger     *slog.Logger
	pollWait   time.Duration
	visibility time.Duration
	maxDelay   time.Duration
}

// New builds a queue with timing taken from config.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Queue{
		store:      st,
		logger:     logging.NewComponentLogger(logger, "pubqueue"),
		pollWait:   time.Duration(cfg.Queue.PollWaitSeconds) * time.Second,
		visibility: time.Duration(cfg.Queue.VisibilityTimeoutSeconds) * time.Second,
		maxDelay:   time.Duration(cfg.Queue.MaxDelaySeconds) * time.Second,
	}
}

// Enqueue appends a job. Delivery is delayed until the scheduled time when
// that fits inside the native delay window; longer waits leave the message
// visible and rely on the consumer's due check.
func (q *Queue) Enqueue(ctx context.Context, job Job) (string, error) {
	if job.ContentID == 0 || job.ScheduleID == 0 {
		return "", services.Wrap(services.ErrValidation, "pubqueue", "enqueue", "job must reference content and schedule", nil)
	}
	now := time.Now()
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = now
	}

	visibleAt := now
	if delay := job.ScheduledAt.Sub(now); delay > 0 && delay <= q.maxDelay {
		visibleAt = job.ScheduledAt
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "pubqueue", "enqueue", "encode job", err)
	}

	messageID, err := q.store.InsertJob(ctx, string(payload), visibleAt)
	if err != nil {
		return "", services.Wrap(services.ErrCollaborator, "pubqueue", "enqueue", "insert job", err)
	}

	q.logger.Info("job enqueued",
		logging.String(logging.FieldMessageID, messageID),
		logging.Int64(logging.FieldContentID, job.ContentID),
		logging.Int64(logging.FieldScheduleID, job.ScheduleID),
		logging.Time("visible_at", visibleAt))
	return messageID, nil
}

// Receive long-polls for up to the configured wait, returning as soon as at
// least one job is visible. Received jobs are hidden for the visibility
// timeout; a job that is not deleted before the lease lapses is redelivered.
func (q *Queue) Receive(ctx context.Context, max int) ([]Message, error) {
	deadline := time.Now().Add(q.pollWait)
	for {
		leased, err := q.store.LeaseDueJobs(ctx, max, q.visibility)
		if err != nil {
			return nil, services.Wrap(services.ErrCollaborator, "pubqueue", "receive", "lease jobs", err)
		}
		if len(leased) > 0 {
			return q.decodeAll(leased)
		}
		if !time.Now().Before(deadline) {
			return nil, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval(deadline)):
		}
	}
}

// Delete removes a job under an active lease. A stale receipt is a no-op,
// matching at-least-once semantics.
func (q *Queue) Delete(ctx context.Context, receiptHandle string) error {
	deleted, err := q.store.DeleteJobByReceipt(ctx, receiptHandle)
	if err != nil {
		return services.Wrap(services.ErrCollaborator, "pubqueue", "delete", "delete job", err)
	}
	if !deleted {
		q.logger.Warn("delete with stale receipt", logging.String("receipt_handle", receiptHandle))
	}
	return nil
}

// QueueAttributes reports how many jobs are receivable versus delayed or
// leased.
func (q *Queue) QueueAttributes(ctx context.Context) (Attributes, error) {
	visible, hidden, err := q.store.JobCounts(ctx)
	if err != nil {
		return Attributes{}, services.Wrap(services.ErrCollaborator, "pubqueue", "attributes", "count jobs", err)
	}
	return Attributes{Visible: visible, Hidden: hidden}, nil
}

func (q *Queue) decodeAll(leased []*store.PublishJob) ([]Message, error) {
	messages := make([]Message, 0, len(leased))
	for _, raw := range leased {
		var job Job
		if err := json.Unmarshal([]byte(raw.Payload), &job); err != nil {
			// A malformed payload would redeliver forever; drop it.
			q.logger.Error("dropping undecodable job",
				logging.String(logging.FieldMessageID, raw.MessageID),
				logging.Error(err))
			if _, delErr := q.store.DeleteJobByReceipt(context.Background(), raw.ReceiptHandle); delErr != nil {
				q.logger.Error("failed to drop job", logging.Error(delErr))
			}
			continue
		}
		messages = append(messages, Message{
			MessageID:     raw.MessageID,
			ReceiptHandle: raw.ReceiptHandle,
			ReceiveCount:  raw.ReceiveCount,
			Job:           job,
		})
	}
	return messages, nil
}

func pollInterval(deadline time.Time) time.Duration {
	const step = 250 * time.Millisecond
	remaining := time.Until(deadline)
	if remaining < step {
		return remaining
	}
	return step
}
