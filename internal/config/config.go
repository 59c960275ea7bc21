// Package config provides configuration types, defaults, and persistence
// helpers for glimmer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/zjrosen/glimmer/internal/keywords"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

// TracingConfig holds the tracing subsystem configuration.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"` // "file", "stdout", or "otlp"
	FilePath     string  `mapstructure:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// Config holds all configuration options for glimmer.
// It is replaced wholesale on every change (see Merge), never mutated
// in place, so a Config value handed to the engine stays stable for
// the duration of a refresh.
type Config struct {
	// Keywords highlighted when language_specific is off.
	Keywords []string `mapstructure:"keywords"`

	// Colors is the rotation palette, hex strings. Must be non-empty:
	// the phase counter is reduced modulo its length.
	Colors []string `mapstructure:"colors"`

	// AnimationInterval is the period of the color rotation timer.
	AnimationInterval time.Duration `mapstructure:"animation_interval"`

	// Effect toggles.
	Glow             bool `mapstructure:"glow"`
	WavyUnderline    bool `mapstructure:"wavy_underline"`
	Blink            bool `mapstructure:"blink"`
	Fade             bool `mapstructure:"fade"`
	Pulse            bool `mapstructure:"pulse"`
	LanguageSpecific bool `mapstructure:"language_specific"`

	// WatcherDebounce coalesces bursts of config-file writes.
	WatcherDebounce time.Duration `mapstructure:"watcher_debounce"`

	Tracing TracingConfig `mapstructure:"tracing"`
}

// Partial is a sparse Config for shallow merges: nil fields retain the
// current value. Used by the playground's runtime toggles and by hosts
// calling UpdateConfiguration.
type Partial struct {
	Keywords          *[]string
	Colors            *[]string
	AnimationInterval *time.Duration
	Glow              *bool
	WavyUnderline     *bool
	Blink             *bool
	Fade              *bool
	Pulse             *bool
	LanguageSpecific  *bool
}

// Defaults returns the baseline configuration: the 9-color default
// palette, a 1s rotation, glow/wavy/fade/language-specific on,
// blink/pulse off, and the default keyword list.
func Defaults() Config {
	return Config{
		Keywords:          keywords.Default(),
		Colors:            styles.DefaultPalette.Colors,
		AnimationInterval: time.Second,
		Glow:              true,
		WavyUnderline:     true,
		Blink:             false,
		Fade:              true,
		Pulse:             false,
		LanguageSpecific:  true,
		WatcherDebounce:   500 * time.Millisecond,
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Merge returns a new Config with every non-nil field of p applied over
// c. Absent fields keep their current values.
func (c Config) Merge(p Partial) Config {
	out := c
	if p.Keywords != nil {
		out.Keywords = *p.Keywords
	}
	if p.Colors != nil {
		out.Colors = *p.Colors
	}
	if p.AnimationInterval != nil {
		out.AnimationInterval = *p.AnimationInterval
	}
	if p.Glow != nil {
		out.Glow = *p.Glow
	}
	if p.WavyUnderline != nil {
		out.WavyUnderline = *p.WavyUnderline
	}
	if p.Blink != nil {
		out.Blink = *p.Blink
	}
	if p.Fade != nil {
		out.Fade = *p.Fade
	}
	if p.Pulse != nil {
		out.Pulse = *p.Pulse
	}
	if p.LanguageSpecific != nil {
		out.LanguageSpecific = *p.LanguageSpecific
	}
	return out
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate rejects configurations the engine cannot run with. This is
// the host boundary from the original design pulled into the library:
// every caller gets the same checks.
func Validate(c Config) error {
	if len(c.Colors) == 0 {
		return fmt.Errorf("colors: palette must not be empty")
	}
	for i, col := range c.Colors {
		if !hexColorRe.MatchString(col) {
			return fmt.Errorf("colors[%d]: %q is not a hex color", i, col)
		}
	}
	if c.AnimationInterval <= 0 {
		return fmt.Errorf("animation_interval: must be positive, got %s", c.AnimationInterval)
	}
	for i, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keywords[%d]: keyword must not be blank", i)
		}
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	return nil
}

// DefaultTracesFilePath returns the trace output path used when the
// config leaves tracing.file_path empty: traces.jsonl next to the
// config file.
func DefaultTracesFilePath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "traces.jsonl")
}

// ValidateTracing checks the tracing section.
func ValidateTracing(t TracingConfig) error {
	switch t.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter: unknown exporter %q", t.Exporter)
	}
	if t.SampleRate < 0 || t.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate: must be in [0,1], got %v", t.SampleRate)
	}
	return nil
}

// DefaultConfigTemplate is the commented starter file written on first
// run.
func DefaultConfigTemplate() string {
	var b strings.Builder
	b.WriteString("# glimmer configuration\n")
	b.WriteString("#\n# keywords: highlighted when language_specific is false\n")
	b.WriteString("keywords:\n")
	for _, kw := range keywords.Default() {
		fmt.Fprintf(&b, "  - %s\n", kw)
	}
	b.WriteString("\n# colors: the rotation palette (any number of hex colors)\n")
	b.WriteString("colors:\n")
	for _, col := range styles.DefaultPalette.Colors {
		fmt.Fprintf(&b, "  - %q\n", col)
	}
	b.WriteString(`
# animation_interval: period of the color rotation
animation_interval: 1s

# effects
glow: true
wavy_underline: true
blink: false
fade: true
pulse: false

# language_specific: use the built-in per-language keyword tables
language_specific: true
`)
	return b.String()
}

// WriteDefaultConfig writes the starter config file, creating parent
// directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
