package testsupport

import (
	"path/filepath"
	"testing"

	"slate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Queue.PollWaitSeconds = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPublishCredentials fills in dummy platform credentials so
// PublishConfigured reports true.
func WithPublishCredentials() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Publish.APIKey = "test-key"
		b.cfg.Publish.APISecret = "test-secret"
		b.cfg.Publish.AccessToken = "test-token"
		b.cfg.Publish.AccessTokenSecret = "test-token-secret"
	}
}

// WithIntervalMinutes overrides the default publish spacing.
func WithIntervalMinutes(minutes int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scheduler.IntervalMinutes = minutes
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
