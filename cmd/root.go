package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/glimmer/internal/app"
	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/pubsub"
	"github.com/zjrosen/glimmer/internal/tracing"
	"github.com/zjrosen/glimmer/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "glimmer",
	Short:   "Animated keyword spotlighting in your terminal",
	Long:    `An interactive playground that spotlights configured keywords in an editable buffer with rotating colors, glow, fade, pulse and blink effects.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glimmer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to glimmer.log")
	rootCmd.Flags().Bool("no-watch", false,
		"disable live reload when the config file changes")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("keywords", defaults.Keywords)
	viper.SetDefault("colors", defaults.Colors)
	viper.SetDefault("animation_interval", defaults.AnimationInterval)
	viper.SetDefault("glow", defaults.Glow)
	viper.SetDefault("wavy_underline", defaults.WavyUnderline)
	viper.SetDefault("blink", defaults.Blink)
	viper.SetDefault("fade", defaults.Fade)
	viper.SetDefault("pulse", defaults.Pulse)
	viper.SetDefault("language_specific", defaults.LanguageSpecific)
	viper.SetDefault("watcher_debounce", defaults.WatcherDebounce)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glimmer/config.yaml (current directory)
		// 2. ~/.config/glimmer/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "glimmer"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .glimmer/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

const localConfigPath = ".glimmer/config.yaml"

// configFilePath returns the config file in use, falling back to the
// local path when none was loaded.
func configFilePath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return localConfigPath
}

// tracingConfig fills in the derived trace output path. The defaults
// leave tracing.file_path empty, meaning "next to the config file".
func tracingConfig(cfg config.Config, configPath string) config.TracingConfig {
	tc := cfg.Tracing
	if tc.Enabled && tc.Exporter == "file" && tc.FilePath == "" {
		tc.FilePath = config.DefaultTracesFilePath(configPath)
	}
	return tc
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.ValidateTracing(cfg.Tracing); err != nil {
		return fmt.Errorf("invalid tracing configuration: %w", err)
	}

	if debug || os.Getenv("GLIMMER_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog("glimmer.log", "glimmer")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
	}

	configPath := configFilePath()

	tp, err := tracing.NewProvider(tracingConfig(cfg, configPath))
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	var reload *pubsub.ContinuousListener[watcher.Change]
	var w *watcher.Watcher
	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if !noWatch {
		wcfg := watcher.DefaultConfig(configPath)
		wcfg.DebounceDur = cfg.WatcherDebounce
		if w, err = watcher.New(wcfg); err == nil {
			if err = w.Start(); err != nil {
				// Live reload is best effort; the playground still runs.
				log.ErrorErr(log.CatWatcher, "config watcher failed to start", err)
			} else {
				reload = w.Listener(context.Background())
			}
		} else {
			log.ErrorErr(log.CatWatcher, "config watcher unavailable", err)
		}
	}

	model := app.New(cfg, configPath, reload)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
