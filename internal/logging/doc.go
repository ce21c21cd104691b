// Package logging assembles structured slog loggers and formatting helpers
// used across slate components.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so pipeline and worker code tag log
// lines with content IDs, schedule IDs, and template IDs consistently. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
