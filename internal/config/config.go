package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/validation"
)

type Config struct {
	Feed   FeedConfig   `mapstructure:"feed"`
	Worker WorkerConfig `mapstructure:"worker"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

type FeedConfig struct {
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
}

type WorkerConfig struct {
	QueueSize int           `mapstructure:"queue_size"`
	IdleDelay time.Duration `mapstructure:"idle_delay"`
}

type UIConfig struct {
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	WordWrapMaxWidth int           `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int           `mapstructure:"word_wrap_min_width"`
}

type LogConfig struct {
	Level           string  `mapstructure:"level"`
	Path            string  `mapstructure:"path"`
	DebugSampleRate float64 `mapstructure:"debug_sample_rate"`
	MaxSizeMB       int     `mapstructure:"max_size_mb"`
	MaxBackups      int     `mapstructure:"max_backups"`
	MaxAgeDays      int     `mapstructure:"max_age_days"`
}

func defaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "PodcastsTUI/1.0 (podcast client; github.com/SaxyPandaBear/PodcastsTUI)",
		},
		Worker: WorkerConfig{
			QueueSize: 16,
			IdleDelay: 5 * time.Millisecond,
		},
		UI: UIConfig{
			PollInterval:     100 * time.Millisecond,
			WordWrapMaxWidth: 120,
			WordWrapMinWidth: 40,
		},
		Log: LogConfig{
			Level:           "info",
			Path:            "",
			DebugSampleRate: 1.0,
			MaxSizeMB:       10,
			MaxBackups:      3,
			MaxAgeDays:      28,
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("feed", cfg.Feed)
	v.SetDefault("worker", cfg.Worker)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "podcasts-tui")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PODCASTS_TUI")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// Decode over a populated default so a partial table in the file
	// keeps the defaults of its unset keys.
	config := *cfg
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// An empty log path means "use the default location"; that is
	// resolved by the log setup, not here.
	if config.Log.Path != "" {
		expanded, err := validation.NewFilePathValidator().ValidateAndExpand(config.Log.Path)
		if err != nil {
			return nil, fmt.Errorf("invalid log path: %w", err)
		}
		config.Log.Path = expanded
	}

	return &config, nil
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Convert durations to strings for TOML readability
	feedCfg := map[string]interface{}{
		"http_timeout": config.Feed.HTTPTimeout.String(),
		"user_agent":   config.Feed.UserAgent,
	}

	workerCfg := map[string]interface{}{
		"queue_size": config.Worker.QueueSize,
		"idle_delay": config.Worker.IdleDelay.String(),
	}

	uiCfg := map[string]interface{}{
		"poll_interval":       config.UI.PollInterval.String(),
		"word_wrap_max_width": config.UI.WordWrapMaxWidth,
		"word_wrap_min_width": config.UI.WordWrapMinWidth,
	}

	logCfg := map[string]interface{}{
		"level":             config.Log.Level,
		"path":              config.Log.Path,
		"debug_sample_rate": config.Log.DebugSampleRate,
		"max_size_mb":       config.Log.MaxSizeMB,
		"max_backups":       config.Log.MaxBackups,
		"max_age_days":      config.Log.MaxAgeDays,
	}

	v.Set("feed", feedCfg)
	v.Set("worker", workerCfg)
	v.Set("ui", uiCfg)
	v.Set("log", logCfg)

	validated, err := validation.NewFilePathValidator().EnsureParentDir(path)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	return v.WriteConfigAs(validated)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
