// Package store provides SQLite-backed persistence for topics, content
// items, publish schedules, runtime settings, and the durable publish job
// queue. All access goes through a single *Store with WAL journaling and
// busy retries so the CLI and the worker daemon can share one database file.
package store
