package config

const (
	defaultConfigPath = "~/.config/slate/config.toml"

	defaultDataDir   = "~/.local/share/slate"
	defaultOutputDir = "~/.local/share/slate/output"
	defaultLogDir    = "~/.local/share/slate/logs"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultPlatform              = "twitter"
	defaultPublishRequestTimeout = 60

	defaultPollWaitSeconds          = 20
	defaultVisibilityTimeoutSeconds = 300
	defaultMaxReceive               = 1
	defaultMaxDelaySeconds          = 900
	defaultErrorRetrySeconds        = 5

	defaultIntervalMinutes     = 120
	defaultFallbackLeadMinutes = 5

	defaultMaxBatch     = 30
	defaultRecentWindow = 50
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Publish: Publish{
			Platform:       defaultPlatform,
			RequestTimeout: defaultPublishRequestTimeout,
		},
		Queue: Queue{
			PollWaitSeconds:          defaultPollWaitSeconds,
			VisibilityTimeoutSeconds: defaultVisibilityTimeoutSeconds,
			MaxReceive:               defaultMaxReceive,
			MaxDelaySeconds:          defaultMaxDelaySeconds,
			ErrorRetrySeconds:        defaultErrorRetrySeconds,
		},
		Scheduler: Scheduler{
			IntervalMinutes:     defaultIntervalMinutes,
			FallbackLeadMinutes: defaultFallbackLeadMinutes,
		},
		Generation: Generation{
			MaxBatch:     defaultMaxBatch,
			RecentWindow: defaultRecentWindow,
		},
	}
}
