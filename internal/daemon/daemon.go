package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/pubqueue"
	"slate/internal/publish"
	"slate/internal/store"
	"slate/internal/worker"
)

// Daemon hosts the publish worker and enforces single-instance execution
// through a file lock in the log directory.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	queue  *pubqueue.Queue
	worker *worker.Worker

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	DatabasePath string
	LockFilePath string
	Platform     string
}

// New constructs a daemon with initialized dependencies. The poster defaults
// to the configured platform and degrades to a not-configured stub when
// credentials are missing.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	queue := pubqueue.New(cfg, st, logger)
	poster := publish.NewPoster(cfg)
	lockPath := filepath.Join(cfg.Paths.LogDir, "slated.lock")

	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		store:    st,
		queue:    queue,
		worker:   worker.New(cfg, st, queue, poster, logger),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and launches the publish worker.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another slated instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	d.running.Store(true)

	done := d.done
	go func() {
		defer close(done)
		if err := d.worker.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("worker exited", logging.Error(err))
		}
	}()

	d.logger.Info("slate daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop cancels the worker, waits for it to drain, and releases the lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.done != nil {
		<-d.done
		d.done = nil
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("slate daemon stopped")
}

// Close stops the daemon and closes the store.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status reports runtime information.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		DatabasePath: d.cfg.DatabasePath(),
		LockFilePath: d.lockPath,
		Platform:     d.cfg.Publish.Platform,
	}
}
