package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Logging controls log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Publish contains credentials and defaults for the social platform.
type Publish struct {
	Platform          string `toml:"platform"`
	APIKey            string `toml:"api_key"`
	APISecret         string `toml:"api_secret"`
	AccessToken       string `toml:"access_token"`
	AccessTokenSecret string `toml:"access_token_secret"`
	RequestTimeout    int    `toml:"request_timeout"`
}

// Queue contains publish queue transport tuning.
type Queue struct {
	PollWaitSeconds          int `toml:"poll_wait_seconds"`
	VisibilityTimeoutSeconds int `toml:"visibility_timeout_seconds"`
	MaxReceive               int `toml:"max_receive"`
	MaxDelaySeconds          int `toml:"max_delay_seconds"`
	ErrorRetrySeconds        int `toml:"error_retry_seconds"`
}

// Scheduler contains publish spacing defaults.
type Scheduler struct {
	IntervalMinutes     int `toml:"interval_minutes"`
	FallbackLeadMinutes int `toml:"fallback_lead_minutes"`
}

// Generation contains synthesis pipeline tuning.
type Generation struct {
	MaxBatch     int `toml:"max_batch"`
	RecentWindow int `toml:"recent_window"`
}

// Config is the root application configuration.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Logging    Logging    `toml:"logging"`
	Publish    Publish    `toml:"publish"`
	Queue      Queue      `toml:"queue"`
	Scheduler  Scheduler  `toml:"scheduler"`
	Generation Generation `toml:"generation"`
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// Load reads configuration from path, falling back to the default search
// path when empty. Defaults apply for any field the file omits.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(defaultPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultPath, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return defaultPath, true, nil
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// CreateSample writes the sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// EnsureDirectories creates the directories the application writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.OutputDir, c.Paths.LogDir}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the SQLite database location inside the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "slate.db")
}

// PublishConfigured reports whether platform credentials are present.
func (c *Config) PublishConfigured() bool {
	return strings.TrimSpace(c.Publish.APIKey) != "" &&
		strings.TrimSpace(c.Publish.APISecret) != "" &&
		strings.TrimSpace(c.Publish.AccessToken) != "" &&
		strings.TrimSpace(c.Publish.AccessTokenSecret) != ""
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return trimmed, nil
}
