package planner_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/planner"
	"slate/internal/pubqueue"
	"slate/internal/services"
	"slate/internal/store"
	"slate/internal/testsupport"
)

func newPlanner(t *testing.T) (*planner.Planner, *store.Store, *pubqueue.Queue, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	q := pubqueue.New(cfg, st, logging.NewNop())
	return planner.New(cfg, st, q, logging.NewNop()), st, q, cfg
}

func TestNextTimeUsesExplicit(t *testing.T) {
	p, _, _, _ := newPlanner(t)

	explicit := time.Now().Add(7 * time.Hour)
	got, err := p.NextTime(context.Background(), time.Now(), &explicit)
	if err != nil {
		t.Fatalf("NextTime failed: %v", err)
	}
	if !got.Equal(explicit) {
		t.Fatalf("explicit time not honored: %v vs %v", got, explicit)
	}
}

func TestNextTimeFallsBackToShortLead(t *testing.T) {
	p, _, _, cfg := newPlanner(t)

	now := time.Now()
	got, err := p.NextTime(context.Background(), now, nil)
	if err != nil {
		t.Fatalf("NextTime failed: %v", err)
	}
	want := now.Add(time.Duration(cfg.Scheduler.FallbackLeadMinutes) * time.Minute)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNextTimeSpacesAfterLastPending(t *testing.T) {
	p, st, _, _ := newPlanner(t)
	ctx := context.Background()

	topic := testsupport.NewTopic(t, st, "Beams", "statics")
	item := testsupport.NewReadyContent(t, st, topic.ID, "/tmp/a.txt")

	anchor := time.Now().Add(3 * time.Hour).Truncate(time.Second)
	if _, err := st.NewSchedule(ctx, item.ID, "twitter", anchor); err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}
	if err := st.SetSetting(ctx, store.SettingPublishInterval, "90"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	got, err := p.NextTime(ctx, time.Now(), nil)
	if err != nil {
		t.Fatalf("NextTime failed: %v", err)
	}
	want := anchor.Add(90 * time.Minute)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestQueueContentGatesUnpublishable(t *testing.T) {
	p, st, q, _ := newPlanner(t)
	ctx := context.Background()

	topic := testsupport.NewTopic(t, st, "Gears", "machines")
	item, err := st.NewContent(ctx, topic.ID, store.TypeProblem)
	if err != nil {
		t.Fatalf("NewContent failed: %v", err)
	}

	_, err = p.QueueContent(ctx, item.ID, "twitter", "", nil)
	if !services.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Zero mutation: no schedule, no job, status unchanged.
	pending, err := st.PendingSchedules(ctx)
	if err != nil {
		t.Fatalf("PendingSchedules failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no schedules, got %d", len(pending))
	}
	attrs, err := q.QueueAttributes(ctx)
	if err != nil {
		t.Fatalf("QueueAttributes failed: %v", err)
	}
	if attrs.Visible+attrs.Hidden != 0 {
		t.Fatalf("expected empty queue, got %+v", attrs)
	}
	stored, _ := st.GetContent(ctx, item.ID)
	if stored.Status != store.StatusGenerating {
		t.Fatalf("status mutated to %s", stored.Status)
	}
}

func TestQueueContentCreatesScheduleJobAndQueuedStatus(t *testing.T) {
	p, st, q, _ := newPlanner(t)
	ctx := context.Background()

	topic := testsupport.NewTopic(t, st, "Beams", "statics")
	item := testsupport.NewReadyContent(t, st, topic.ID, "/tmp/a.txt")

	explicit := time.Now().Add(-time.Minute)
	rec, err := p.QueueContent(ctx, item.ID, "twitter", "", &explicit)
	if err != nil {
		t.Fatalf("QueueContent failed: %v", err)
	}
	if rec.Status != store.SchedulePending {
		t.Fatalf("expected pending schedule, got %s", rec.Status)
	}

	stored, _ := st.GetContent(ctx, item.ID)
	if stored.Status != store.StatusQueued {
		t.Fatalf("expected queued status, got %s", stored.Status)
	}

	messages, err := q.Receive(ctx, 10)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 enqueued job, got %d", len(messages))
	}
	job := messages[0].Job
	if job.ContentID != item.ID || job.ScheduleID != rec.ID {
		t.Fatalf("job references wrong rows: %+v", job)
	}
	if job.Caption == "" {
		t.Fatal("expected a caption on the job")
	}
}

func TestQueueAllReadySpacesEvenly(t *testing.T) {
	p, st, _, _ := newPlanner(t)
	ctx := context.Background()

	if err := st.SetSetting(ctx, store.SettingPublishInterval, "120"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	topic := testsupport.NewTopic(t, st, "Beams", "statics")
	var ids []int64
	for i := 0; i < 3; i++ {
		item := testsupport.NewReadyContent(t, st, topic.ID, "/tmp/item"+strconv.Itoa(i)+".txt")
		ids = append(ids, item.ID)
		time.Sleep(2 * time.Millisecond)
	}

	before := time.Now()
	records, err := p.QueueAllReady(ctx, "twitter")
	if err != nil {
		t.Fatalf("QueueAllReady failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(records))
	}

	// Oldest content first, each slot one interval after the previous.
	for i, rec := range records {
		if rec.ContentID != ids[i] {
			t.Fatalf("expected creation order, got content %d at slot %d", rec.ContentID, i)
		}
		minAt := before.Add(time.Duration(i+1) * 2 * time.Hour)
		if rec.ScheduledAt.Before(minAt.Add(-time.Second)) {
			t.Fatalf("slot %d too early: %v < %v", i, rec.ScheduledAt, minAt)
		}
		if i > 0 {
			gap := rec.ScheduledAt.Sub(records[i-1].ScheduledAt)
			if gap != 2*time.Hour {
				t.Fatalf("expected 2h spacing, got %v", gap)
			}
		}
	}

	for _, id := range ids {
		stored, _ := st.GetContent(ctx, id)
		if stored.Status != store.StatusQueued {
			t.Fatalf("content %d not queued: %s", id, stored.Status)
		}
	}
}

func TestCaptionChain(t *testing.T) {
	item := &store.ContentItem{
		ScriptJSON: `{"tweet_text":"quiz time","hook_text":"Can you solve this?","cta_text":"Comment A, B, C, or D!"}`,
	}

	if got := planner.Caption(item, "custom text"); got != "custom text" {
		t.Fatalf("custom caption ignored: %q", got)
	}
	if got := planner.Caption(item, ""); got != "quiz time" {
		t.Fatalf("tweet text not used: %q", got)
	}

	item.ScriptJSON = `{"hook_text":"Can you solve this?","cta_text":"Comment A, B, C, or D!"}`
	if got := planner.Caption(item, ""); got != "Can you solve this?\n\nComment A, B, C, or D!" {
		t.Fatalf("hook+cta not used: %q", got)
	}

	item.ScriptJSON = `{}`
	if got := planner.Caption(item, ""); got != "Check this out!" {
		t.Fatalf("fallback not used: %q", got)
	}
}
