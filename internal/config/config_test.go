package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slate/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Scheduler.IntervalMinutes != 120 {
		t.Fatalf("expected default interval 120, got %d", cfg.Scheduler.IntervalMinutes)
	}
	if cfg.Generation.MaxBatch != 30 {
		t.Fatalf("expected default max batch 30, got %d", cfg.Generation.MaxBatch)
	}
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		"[scheduler]",
		"interval_minutes = 10",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s to exist, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Scheduler.IntervalMinutes != 10 {
		t.Fatalf("expected interval 10, got %d", cfg.Scheduler.IntervalMinutes)
	}
	if cfg.Queue.PollWaitSeconds != 20 {
		t.Fatalf("expected default poll wait, got %d", cfg.Queue.PollWaitSeconds)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected default log format, got %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsShortVisibilityTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.Queue.VisibilityTimeoutSeconds = 30
	cfg.Publish.RequestTimeout = 60
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error when visibility timeout does not exceed publish timeout")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to be reported as absent")
	}
	if cfg.Scheduler.IntervalMinutes != 120 {
		t.Fatalf("expected defaults, got interval %d", cfg.Scheduler.IntervalMinutes)
	}
}
