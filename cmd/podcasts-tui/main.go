package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/config"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/debuglog"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/feed"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/tui"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/validation"
	"github.com/SaxyPandaBear/PodcastsTUI/internal/worker"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	flags = struct {
		ConfigFile     string
		LogLevel       string
		GenerateConfig bool
	}{}

	root = &cobra.Command{
		Use:   "podcasts-tui",
		Short: "Terminal podcast client: load a feed, browse episodes, read detail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.GenerateConfig {
				return generateConfig()
			}
			return run(cmd.Context())
		},
	}
)

func init() {
	root.Version = Version
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "path to configuration file")
	root.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warn, error, off); overrides config")
	root.Flags().BoolVar(&flags.GenerateConfig, "generate-config", false, "write the default config file and exit")
}

func run(ctx context.Context) error {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if flags.LogLevel != "" {
		level = flags.LogLevel
	}
	debuglog.SetRotation(cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	if err := debuglog.Setup(debuglog.ParseLogLevel(level), cfg.Log.Path); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer debuglog.Close()
	debuglog.SetDebugSampling(cfg.Log.DebugSampleRate)

	fetcher := feed.NewFetcherWithClient(&http.Client{Timeout: cfg.Feed.HTTPTimeout})
	fetcher.SetUserAgent(cfg.Feed.UserAgent)

	w := worker.New(fetcher, cfg.Worker.QueueSize, cfg.Worker.IdleDelay)
	w.Start(ctx)
	defer w.Stop()

	debuglog.Infof("starting %s %s", tui.AppName, Version)

	app := tui.NewApp(cfg, w)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	debuglog.Infof("clean shutdown")
	return nil
}

func generateConfig() error {
	configFile, err := validation.NewPathHandler().ConfigPath(flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if err := config.GenerateDefaultConfig(configFile); err != nil {
		return fmt.Errorf("generating config: %w", err)
	}
	fmt.Printf("Generated default configuration at: %s\n", configFile)
	return nil
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
