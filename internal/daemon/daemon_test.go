package daemon_test

import (
	"context"
	"testing"
	"time"

	"slate/internal/daemon"
	"slate/internal/logging"
	"slate/internal/testsupport"
)

func TestStartEnforcesSingleInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	first, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer first.Stop()

	if !first.Status().Running {
		t.Fatal("expected daemon to report running")
	}

	second, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("New second: %v", err)
	}
	if err := second.Start(ctx); err == nil {
		second.Stop()
		t.Fatal("expected second Start to fail while lock is held")
	}
}

func TestStopReleasesLockForRestart(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	d, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	d.Stop()

	if d.Status().Running {
		t.Fatal("expected daemon to report stopped")
	}

	// The lock must be reacquirable after a clean stop.
	restarted, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("New restarted: %v", err)
	}
	if err := restarted.Start(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}
	restarted.Stop()
}

func TestStopWaitsForWorkerExit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	d, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
