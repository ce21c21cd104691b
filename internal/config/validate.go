package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateQueue(); err != nil {
		return err
	}
	if err := c.validateScheduler(); err != nil {
		return err
	}
	if err := c.validateGeneration(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}

func (c *Config) validateQueue() error {
	if c.Queue.VisibilityTimeoutSeconds <= c.Publish.RequestTimeout {
		return fmt.Errorf(
			"queue.visibility_timeout_seconds (%d) must exceed publish.request_timeout (%d) or duplicate deliveries become likely",
			c.Queue.VisibilityTimeoutSeconds, c.Publish.RequestTimeout,
		)
	}
	if c.Queue.MaxReceive > 10 {
		return errors.New("queue.max_receive must be at most 10")
	}
	return nil
}

func (c *Config) validateScheduler() error {
	if c.Scheduler.IntervalMinutes <= 0 {
		return errors.New("scheduler.interval_minutes must be positive")
	}
	return nil
}

func (c *Config) validateGeneration() error {
	if c.Generation.MaxBatch > 100 {
		return errors.New("generation.max_batch must be at most 100")
	}
	return nil
}
