// Package config loads, normalizes, and validates slate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI and the publish worker need: storage locations, platform credentials,
// queue transport tuning, and scheduling defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
