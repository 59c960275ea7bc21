package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/glimmer/internal/keywords"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Len(t, cfg.Colors, 9)
	assert.Equal(t, keywords.Default(), cfg.Keywords)
	assert.Equal(t, time.Second, cfg.AnimationInterval)

	assert.True(t, cfg.Glow)
	assert.True(t, cfg.WavyUnderline)
	assert.True(t, cfg.Fade)
	assert.True(t, cfg.LanguageSpecific)
	assert.False(t, cfg.Blink)
	assert.False(t, cfg.Pulse)
}

func TestDefaultTracesFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join(".glimmer", "traces.jsonl"),
		DefaultTracesFilePath(filepath.Join(".glimmer", "config.yaml")))
}

func TestMergeRoundTrip(t *testing.T) {
	interval := 500 * time.Millisecond
	merged := Defaults().Merge(Partial{AnimationInterval: &interval})

	assert.Equal(t, interval, merged.AnimationInterval)

	// Every other field retains the default.
	want := Defaults()
	want.AnimationInterval = interval
	assert.Equal(t, want, merged)
}

func TestMergeEmptyPartialKeepsEverything(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, cfg, cfg.Merge(Partial{}))
}

func TestMergeMultipleFields(t *testing.T) {
	blink := true
	glow := false
	kws := []string{"select", "from"}

	merged := Defaults().Merge(Partial{Blink: &blink, Glow: &glow, Keywords: &kws})
	assert.True(t, merged.Blink)
	assert.False(t, merged.Glow)
	assert.Equal(t, kws, merged.Keywords)
	assert.Equal(t, Defaults().Colors, merged.Colors)
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	cfg := Defaults()
	blink := true
	_ = cfg.Merge(Partial{Blink: &blink})
	assert.False(t, cfg.Blink)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty palette",
			mutate:  func(c *Config) { c.Colors = nil },
			wantErr: "palette must not be empty",
		},
		{
			name:    "bad hex color",
			mutate:  func(c *Config) { c.Colors = []string{"red"} },
			wantErr: "not a hex color",
		},
		{
			name:   "short hex form allowed",
			mutate: func(c *Config) { c.Colors = []string{"#111", "#222"} },
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.AnimationInterval = 0 },
			wantErr: "must be positive",
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.AnimationInterval = -time.Second },
			wantErr: "must be positive",
		},
		{
			name:    "blank keyword",
			mutate:  func(c *Config) { c.Keywords = []string{"const", "  "} },
			wantErr: "must not be blank",
		},
		{
			name:    "unknown tracing exporter",
			mutate:  func(c *Config) { c.Tracing.Exporter = "jaeger" },
			wantErr: "unknown exporter",
		},
		{
			name:    "sample rate out of range",
			mutate:  func(c *Config) { c.Tracing.SampleRate = 2 },
			wantErr: "must be in [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigTemplateMentionsEveryToggle(t *testing.T) {
	tpl := DefaultConfigTemplate()
	for _, key := range []string{"keywords", "colors", "animation_interval",
		"glow", "wavy_underline", "blink", "fade", "pulse", "language_specific"} {
		assert.Contains(t, tpl, key)
	}
}
