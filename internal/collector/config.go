package collector

import "time"

// CollectorConfig contains configurable parameters for the percentage sources.
// Use DefaultCollectorConfig() to get sensible defaults, then override as needed.
type CollectorConfig struct {
	// Timeout settings
	SampleTimeout time.Duration // Timeout for a single reading (default: 2s)

	// Polling interval (for the TUI watch page)
	PollInterval time.Duration // How often to take a reading (default: 3s)

	// Disk source
	DiskPath string // Mountpoint measured by the disk source (default: "/")

	// Collection limits
	MaxConsoleLogs  int // Maximum console log entries to retain (default: 100)
	HistoryCapacity int // Capacity for the committed-value history (default: 31)
}

// DefaultCollectorConfig returns a CollectorConfig with sensible defaults.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		SampleTimeout: 2 * time.Second,

		// Longer than one transition so each reading finishes animating.
		PollInterval: 3 * time.Second,

		DiskPath: "/",

		MaxConsoleLogs:  100,
		HistoryCapacity: 31,
	}
}

// WithSampleTimeout returns a copy of the config with modified sample timeout.
func (c CollectorConfig) WithSampleTimeout(d time.Duration) CollectorConfig {
	c.SampleTimeout = d
	return c
}

// WithPollInterval returns a copy of the config with modified poll interval.
func (c CollectorConfig) WithPollInterval(d time.Duration) CollectorConfig {
	c.PollInterval = d
	return c
}

// WithDiskPath returns a copy of the config with a different disk mountpoint.
func (c CollectorConfig) WithDiskPath(path string) CollectorConfig {
	c.DiskPath = path
	return c
}

// WithHistoryCapacity returns a copy of the config with a different history size.
func (c CollectorConfig) WithHistoryCapacity(n int) CollectorConfig {
	c.HistoryCapacity = n
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c CollectorConfig) Validate() error {
	if c.SampleTimeout <= 0 {
		return &ConfigError{Field: "SampleTimeout", Message: "must be positive"}
	}
	if c.PollInterval <= 0 {
		return &ConfigError{Field: "PollInterval", Message: "must be positive"}
	}
	if c.DiskPath == "" {
		return &ConfigError{Field: "DiskPath", Message: "must not be empty"}
	}
	if c.HistoryCapacity < 2 {
		return &ConfigError{Field: "HistoryCapacity", Message: "must be at least 2"}
	}
	if c.MaxConsoleLogs <= 0 {
		return &ConfigError{Field: "MaxConsoleLogs", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
