package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/tracing"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestConfigFilePath_FallsBackToLocal(t *testing.T) {
	viper.Reset()
	assert.Equal(t, localConfigPath, configFilePath())
}

func TestLanguagesCommand_ListsEveryTable(t *testing.T) {
	cmd, buf := newTestCmd()
	require.NoError(t, runLanguages(cmd, nil))

	out := buf.String()
	for _, lang := range []string{"go", "rust", "python", "javascript", "typescript", "c", "java", "default"} {
		assert.Contains(t, out, lang)
	}
	// Spot-check a language-specific keyword.
	assert.Contains(t, out, "impl")
}

func TestPalettesCommand_ListsBuiltins(t *testing.T) {
	cmd, buf := newTestCmd()
	require.NoError(t, runPalettes(cmd, nil))

	out := buf.String()
	for _, name := range styles.PaletteNames() {
		assert.Contains(t, out, name)
	}
}

func TestPalettesApply_UnknownPalette(t *testing.T) {
	cmd, _ := newTestCmd()
	err := runPalettesApply(cmd, []string{"nosuch"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown palette")
}

func TestPalettesApply_WritesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	viper.Reset()
	viper.SetConfigFile(path)
	t.Cleanup(viper.Reset)

	cmd, buf := newTestCmd()
	require.NoError(t, runPalettesApply(cmd, []string{"nord"}))
	assert.Contains(t, buf.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, c := range styles.Palettes["nord"].Colors {
		assert.Contains(t, string(data), c)
	}
}

func TestKeywordsCommand_ListsDefaults(t *testing.T) {
	cfg = config.Config{}
	t.Cleanup(func() { cfg = config.Config{} })

	cmd, buf := newTestCmd()
	require.NoError(t, runKeywords(cmd, nil))

	out := buf.String()
	for _, kw := range []string{"function", "const", "return"} {
		assert.Contains(t, out, kw)
	}
}

func TestKeywordsSet_RejectsBlankKeyword(t *testing.T) {
	cmd, _ := newTestCmd()
	err := runKeywordsSet(cmd, []string{"func", "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank")
}

func TestKeywordsSet_WritesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	viper.Reset()
	viper.SetConfigFile(path)
	t.Cleanup(viper.Reset)

	cmd, buf := newTestCmd()
	require.NoError(t, runKeywordsSet(cmd, []string{"select", "from", "where"}))
	assert.Contains(t, buf.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, kw := range []string{"select", "from", "where"} {
		assert.Contains(t, string(data), kw)
	}
}

func TestTracingConfig_DerivesFilePathFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	c := config.Defaults()
	c.Tracing.Enabled = true

	tc := tracingConfig(c, path)
	assert.Equal(t, filepath.Join(dir, "traces.jsonl"), tc.FilePath)

	// Enabling tracing in an otherwise default config must start cleanly.
	tp, err := tracing.NewProvider(tc)
	require.NoError(t, err)
	require.True(t, tp.Enabled())
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestTracingConfig_KeepsExplicitFilePath(t *testing.T) {
	c := config.Defaults()
	c.Tracing.Enabled = true
	c.Tracing.FilePath = "/tmp/custom.jsonl"

	tc := tracingConfig(c, "config.yaml")
	assert.Equal(t, "/tmp/custom.jsonl", tc.FilePath)
}

func TestSetVersion(t *testing.T) {
	t.Cleanup(func() { SetVersion("dev") })
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}
