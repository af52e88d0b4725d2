package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			HTTPTimeout: 5 * time.Second,
		},
		Worker: WorkerConfig{
			QueueSize: 8,
			IdleDelay: 1 * time.Millisecond,
		},
		UI: UIConfig{
			PollInterval:     10 * time.Millisecond,
			WordWrapMaxWidth: 120,
			WordWrapMinWidth: 40,
		},
		Log: LogConfig{
			Level:           "off", // Keep test output quiet
			DebugSampleRate: 1.0,
		},
	}
}
