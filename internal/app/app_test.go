package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/glimmer/internal/animator"
	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/keywords"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/match"
	"github.com/zjrosen/glimmer/internal/pubsub"
	"github.com/zjrosen/glimmer/internal/watcher"
)

func reloadEvent(path string) pubsub.Event[watcher.Change] {
	return pubsub.Event[watcher.Change]{
		Type:    pubsub.ReloadEvent,
		Payload: watcher.Change{Path: path},
	}
}

// createTestModel creates a Model without a config file or watcher.
func createTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.Defaults(), "", nil)
	t.Cleanup(func() { m.dispose() })
	return m
}

func TestApp_NewDecoratesSampleText(t *testing.T) {
	m := createTestModel(t)

	// The sample buffer carries several keywords, so at least one slot
	// must hold ranges straight away.
	decorated := false
	for slot := 0; slot < len(m.cfg.Colors); slot++ {
		if len(m.decorations.Slot(slot)) > 0 {
			decorated = true
			break
		}
	}
	assert.True(t, decorated, "expected sample text to be decorated on startup")
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = newModel.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestApp_TickAdvancesPhaseAndRearmsListener(t *testing.T) {
	m := createTestModel(t)

	newModel, cmd := m.Update(pubsub.Event[animator.Tick]{
		Type:    pubsub.TickEvent,
		Payload: animator.Tick{Phase: 3},
	})
	m = newModel.(Model)

	assert.Equal(t, 3, m.phase)
	assert.NotNil(t, cmd, "tick handling must re-arm the listener")
}

func TestApp_EditingSchedulesDebouncedRefresh(t *testing.T) {
	m := createTestModel(t)
	gen := m.gen

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = newModel.(Model)

	assert.Equal(t, gen+1, m.gen, "each edit bumps the debounce generation")
	assert.NotNil(t, cmd, "edits schedule a delayed refresh")
}

func TestApp_StaleDebounceGenerationIsIgnored(t *testing.T) {
	m := createTestModel(t)

	// Empty the buffer so a refresh would clear every slot.
	m.buffer = NewBuffer("", "go")
	m.cursorRow, m.cursorCol = 0, 0
	m.gen = 7

	newModel, _ := m.Update(debounceMsg{gen: 6})
	m = newModel.(Model)

	stale := false
	for slot := 0; slot < len(m.cfg.Colors); slot++ {
		if len(m.decorations.Slot(slot)) > 0 {
			stale = true
		}
	}
	assert.True(t, stale, "a superseded debounce must not refresh")

	newModel, _ = m.Update(debounceMsg{gen: 7})
	m = newModel.(Model)

	for slot := 0; slot < len(m.cfg.Colors); slot++ {
		assert.Empty(t, m.decorations.Slot(slot), "current-generation refresh clears the emptied buffer")
	}
}

func TestApp_ToggleChordsFlipEffects(t *testing.T) {
	m := createTestModel(t)

	tests := []struct {
		key  tea.KeyType
		get  func(Model) bool
		want bool
	}{
		{tea.KeyCtrlG, func(m Model) bool { return m.cfg.Glow }, false},
		{tea.KeyCtrlU, func(m Model) bool { return m.cfg.WavyUnderline }, false},
		{tea.KeyCtrlB, func(m Model) bool { return m.cfg.Blink }, true},
		{tea.KeyCtrlF, func(m Model) bool { return m.cfg.Fade }, false},
		{tea.KeyCtrlP, func(m Model) bool { return m.cfg.Pulse }, true},
		{tea.KeyCtrlL, func(m Model) bool { return m.cfg.LanguageSpecific }, false},
	}
	for _, tc := range tests {
		newModel, _ := m.Update(tea.KeyMsg{Type: tc.key})
		m = newModel.(Model)
		assert.Equal(t, tc.want, tc.get(m), "chord %v", tc.key)
	}
}

func TestApp_ToggleDisablesAndRestores(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = newModel.(Model)

	assert.False(t, m.enabled)
	for slot := 0; slot < len(m.cfg.Colors); slot++ {
		assert.Empty(t, m.decorations.Slot(slot), "disabling clears every slot")
	}
	assert.Contains(t, m.View(), "highlighting off")

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = newModel.(Model)

	assert.True(t, m.enabled)
	decorated := false
	for slot := 0; slot < len(m.cfg.Colors); slot++ {
		if len(m.decorations.Slot(slot)) > 0 {
			decorated = true
		}
	}
	assert.True(t, decorated, "re-enabling refreshes immediately")
}

func TestApp_SpeedClampsAtBounds(t *testing.T) {
	m := createTestModel(t)

	for range 10 {
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlUp})
		m = newModel.(Model)
	}
	assert.Equal(t, minInterval, m.cfg.AnimationInterval)

	for range 12 {
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlDown})
		m = newModel.(Model)
	}
	assert.Equal(t, maxInterval, m.cfg.AnimationInterval)
}

func TestApp_NextLanguageCycles(t *testing.T) {
	m := createTestModel(t)
	start := m.buffer.LanguageID()
	langs := keywords.Languages()
	seen := map[string]bool{start: true}

	for range langs {
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
		m = newModel.(Model)
		seen[m.buffer.LanguageID()] = true
	}

	assert.Len(t, seen, len(langs), "one lap visits every language")
	assert.Equal(t, start, m.buffer.LanguageID(), "one full lap lands back where it started")
}

func TestApp_HelpOverlayTogglesAndDismisses(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	m = newModel.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "glimmer")

	before := m.buffer.Text()
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = newModel.(Model)
	assert.False(t, m.showHelp, "any key dismisses help")
	assert.Equal(t, before, m.buffer.Text(), "the dismissing key is not typed into the buffer")
}

func TestApp_QuitDisposesAndReturnsQuit(t *testing.T) {
	m := New(config.Defaults(), "", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.decorations.Disposed())
}

func TestApp_ReloadAppliesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animation_interval: 250ms\nglow: false\n"), 0o644))

	m := New(config.Defaults(), path, nil)
	t.Cleanup(func() { m.dispose() })

	newModel, _ := m.Update(reloadEvent(path))
	m = newModel.(Model)

	assert.Equal(t, 250*time.Millisecond, m.cfg.AnimationInterval)
	assert.False(t, m.cfg.Glow)
	assert.Len(t, m.cfg.Colors, len(config.Defaults().Colors), "unset fields keep their values")
	assert.Empty(t, m.errLine)
}

func TestApp_ReloadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: [\"notahex\"]\n"), 0o644))

	m := New(config.Defaults(), path, nil)
	t.Cleanup(func() { m.dispose() })
	before := m.cfg

	newModel, _ := m.Update(reloadEvent(path))
	m = newModel.(Model)

	assert.Equal(t, before, m.cfg, "invalid files are rejected wholesale")
	assert.NotEmpty(t, m.errLine)
}

func TestApp_ReloadListenerDeliversBrokerEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("glow: false\n"), 0o644))

	broker := pubsub.NewBroker[watcher.Change]()
	defer broker.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listener := pubsub.NewContinuousListener(ctx, broker)

	m := New(config.Defaults(), path, listener)
	t.Cleanup(func() { m.dispose() })

	cmd := listener.Listen()
	broker.Publish(pubsub.ReloadEvent, watcher.Change{Path: path})

	msg := cmd()
	require.IsType(t, pubsub.Event[watcher.Change]{}, msg)

	newModel, next := m.Update(msg)
	m = newModel.(Model)
	assert.False(t, m.cfg.Glow)
	assert.NotNil(t, next, "reload handling re-arms the listener")
}

func TestApp_EmptyBufferShowsPlaceholder(t *testing.T) {
	m := createTestModel(t)
	m.buffer = NewBuffer("", "go")
	m.cursorRow, m.cursorCol = 0, 0

	assert.Contains(t, m.View(), "keywords light up")
}

func TestApp_TypingRemovesPlaceholder(t *testing.T) {
	m := createTestModel(t)
	m.buffer = NewBuffer("", "go")
	m.cursorRow, m.cursorCol = 0, 0

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = newModel.(Model)

	assert.NotContains(t, m.View(), "keywords light up")
}

func TestApp_OversizedBufferShowsNotice(t *testing.T) {
	m := createTestModel(t)
	m.buffer = NewBuffer(strings.Repeat("x", match.MaxDocumentLen+1), "go")
	m.width = 120

	assert.Contains(t, m.View(), "buffer too large")
}

func TestApp_LogOverlayShowsRecentEntries(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(log.Entry{Type: pubsub.LogEvent, Payload: "10:00:00 [INFO] [config] config reloaded\n"})
	m = newModel.(Model)
	require.Len(t, m.logLines, 1)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = newModel.(Model)
	require.True(t, m.showLogs)
	assert.Contains(t, m.View(), "config reloaded")

	before := m.buffer.Text()
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = newModel.(Model)
	assert.False(t, m.showLogs, "any key dismisses the overlay")
	assert.Equal(t, before, m.buffer.Text(), "the dismissing key is not typed into the buffer")
}

func TestApp_LogOverlayEmptyState(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = newModel.(Model)

	assert.Contains(t, m.View(), "no log entries")
}

func TestApp_LogRingKeepsRecentEntries(t *testing.T) {
	m := createTestModel(t)

	for i := 0; i < maxLogLines+5; i++ {
		newModel, _ := m.Update(log.Entry{Type: pubsub.LogEvent, Payload: fmt.Sprintf("entry %d\n", i)})
		m = newModel.(Model)
	}

	assert.Len(t, m.logLines, maxLogLines)
	assert.Equal(t, fmt.Sprintf("entry %d", maxLogLines+4), m.logLines[maxLogLines-1])
}

func TestApp_ViewShowsStatusBar(t *testing.T) {
	m := createTestModel(t)
	m.width, m.height = 100, 20

	view := m.View()
	assert.Contains(t, view, "phase")
	assert.Contains(t, view, "go")
}

func TestApp_EndToEnd(t *testing.T) {
	m := New(config.Defaults(), "", nil)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return len(bts) > 0
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("return")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
