package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizePublish()
	c.normalizeQueue()
	c.normalizeScheduler()
	c.normalizeGeneration()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizePublish() {
	c.Publish.Platform = strings.ToLower(strings.TrimSpace(c.Publish.Platform))
	if c.Publish.Platform == "" {
		c.Publish.Platform = defaultPlatform
	}
	if c.Publish.RequestTimeout <= 0 {
		c.Publish.RequestTimeout = defaultPublishRequestTimeout
	}
}

func (c *Config) normalizeQueue() {
	if c.Queue.PollWaitSeconds <= 0 {
		c.Queue.PollWaitSeconds = defaultPollWaitSeconds
	}
	if c.Queue.VisibilityTimeoutSeconds <= 0 {
		c.Queue.VisibilityTimeoutSeconds = defaultVisibilityTimeoutSeconds
	}
	if c.Queue.MaxReceive <= 0 {
		c.Queue.MaxReceive = defaultMaxReceive
	}
	if c.Queue.MaxDelaySeconds <= 0 {
		c.Queue.MaxDelaySeconds = defaultMaxDelaySeconds
	}
	if c.Queue.ErrorRetrySeconds <= 0 {
		c.Queue.ErrorRetrySeconds = defaultErrorRetrySeconds
	}
}

func (c *Config) normalizeScheduler() {
	if c.Scheduler.IntervalMinutes <= 0 {
		c.Scheduler.IntervalMinutes = defaultIntervalMinutes
	}
	if c.Scheduler.FallbackLeadMinutes <= 0 {
		c.Scheduler.FallbackLeadMinutes = defaultFallbackLeadMinutes
	}
}

func (c *Config) normalizeGeneration() {
	if c.Generation.MaxBatch <= 0 {
		c.Generation.MaxBatch = defaultMaxBatch
	}
	if c.Generation.RecentWindow <= 0 {
		c.Generation.RecentWindow = defaultRecentWindow
	}
}
