package pubqueue_test

import (
	"context"
	"testing"
	"time"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/pubqueue"
	"slate/internal/store"
	"slate/internal/testsupport"
)

func newQueue(t *testing.T, mutate func(*config.Config)) (*pubqueue.Queue, *store.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	if mutate != nil {
		mutate(cfg)
	}
	st := testsupport.MustOpenStore(t, cfg)
	return pubqueue.New(cfg, st, logging.NewNop()), st
}

func TestEnqueueAndReceiveImmediateJob(t *testing.T) {
	q, _ := newQueue(t, nil)
	ctx := context.Background()

	job := pubqueue.Job{
		ContentID:   1,
		ScheduleID:  2,
		Platform:    "twitter",
		Caption:     "test caption",
		ImagePath:   "/tmp/diagram.txt",
		ScheduledAt: time.Now().Add(-time.Minute),
	}
	msgID, err := q.Enqueue(ctx, job)
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	if msgID == "" {
		t.Fatal("expected a message id")
	}

	messages, err := q.Receive(ctx, 10)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	got := messages[0]
	if got.MessageID != msgID {
		t.Fatalf("message id mismatch: %s vs %s", got.MessageID, msgID)
	}
	if got.Job.ContentID != 1 || got.Job.ScheduleID != 2 || got.Job.Caption != "test caption" {
		t.Fatalf("payload mismatch: %#v", got.Job)
	}

	if err := q.Delete(ctx, got.ReceiptHandle); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	attrs, err := q.QueueAttributes(ctx)
	if err != nil {
		t.Fatalf("QueueAttributes failed: %v", err)
	}
	if attrs.Visible != 0 || attrs.Hidden != 0 {
		t.Fatalf("expected empty queue, got %+v", attrs)
	}
}

func TestShortDelayUsesNativeDelivery(t *testing.T) {
	q, _ := newQueue(t, nil)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, pubqueue.Job{
		ContentID:   1,
		ScheduleID:  1,
		Platform:    "twitter",
		ScheduledAt: time.Now().Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	messages, err := q.Receive(ctx, 10)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("delayed job must not be visible yet, got %d", len(messages))
	}

	attrs, err := q.QueueAttributes(ctx)
	if err != nil {
		t.Fatalf("QueueAttributes failed: %v", err)
	}
	if attrs.Hidden != 1 {
		t.Fatalf("expected 1 hidden job, got %+v", attrs)
	}
}

func TestLongDelayVisibleImmediately(t *testing.T) {
	q, _ := newQueue(t, nil)
	ctx := context.Background()

	// Two hours exceeds the native delay window, so the message is
	// receivable now and carries the scheduled time in its payload.
	scheduledAt := time.Now().Add(2 * time.Hour)
	_, err := q.Enqueue(ctx, pubqueue.Job{
		ContentID:   1,
		ScheduleID:  1,
		Platform:    "twitter",
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	messages, err := q.Receive(ctx, 10)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected job to be visible immediately, got %d", len(messages))
	}
	if !messages[0].Job.ScheduledAt.Equal(scheduledAt) {
		t.Fatalf("scheduled time lost: %v vs %v", messages[0].Job.ScheduledAt, scheduledAt)
	}
}

func TestUndeletedMessageRedelivers(t *testing.T) {
	q, _ := newQueue(t, func(cfg *config.Config) {
		cfg.Queue.VisibilityTimeoutSeconds = 0
	})
	ctx := context.Background()

	if _, err := q.Enqueue(ctx, pubqueue.Job{
		ContentID:   1,
		ScheduleID:  1,
		Platform:    "twitter",
		ScheduledAt: time.Now().Add(-time.Second),
	}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	first, err := q.Receive(ctx, 1)
	if err != nil || len(first) != 1 {
		t.Fatalf("first receive: %v / %d", err, len(first))
	}

	// Zero visibility means the lease lapses immediately.
	second, err := q.Receive(ctx, 1)
	if err != nil {
		t.Fatalf("second receive: %v", err)
	}
	if len(second) != 1 {
		t.Fatal("expected redelivery after lease expiry")
	}
	if second[0].ReceiveCount != 2 {
		t.Fatalf("expected receive count 2, got %d", second[0].ReceiveCount)
	}
}

func TestEnqueueRequiresReferences(t *testing.T) {
	q, _ := newQueue(t, nil)

	if _, err := q.Enqueue(context.Background(), pubqueue.Job{Platform: "twitter"}); err == nil {
		t.Fatal("expected error for job without content/schedule ids")
	}
}
