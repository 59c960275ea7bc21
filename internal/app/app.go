// Package app contains the playground application model: an editable
// buffer with live keyword decorations.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/viper"

	"github.com/zjrosen/glimmer/internal/animator"
	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/highlight"
	"github.com/zjrosen/glimmer/internal/keys"
	"github.com/zjrosen/glimmer/internal/keywords"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/match"
	"github.com/zjrosen/glimmer/internal/pubsub"
	"github.com/zjrosen/glimmer/internal/style"
	"github.com/zjrosen/glimmer/internal/ui/styles"
	"github.com/zjrosen/glimmer/internal/watcher"
)

// debounceDelay coalesces keystroke bursts into one refresh.
const debounceDelay = 100 * time.Millisecond

const (
	minInterval = 100 * time.Millisecond
	maxInterval = 10 * time.Second
)

// sampleText seeds the buffer with something worth highlighting.
const sampleText = `func greet(name string) string {
	const prefix = "hello, "
	var out = prefix + name
	for range 3 {
		out += "!"
	}
	return out
}`

// maxLogLines bounds the in-memory ring shown by the log overlay.
const maxLogLines = 100

type debounceMsg struct {
	gen int
}

// Model is the playground application state.
type Model struct {
	cfg        config.Config
	configPath string
	keymap     keys.KeyMap

	buffer    *Buffer
	cursorRow int
	cursorCol int

	engine      *highlight.Engine
	resolver    *style.Resolver
	decorations *highlight.Decorations
	anim        *animator.Animator

	phase int
	gen   int

	tickCancel context.CancelFunc
	ticks      *pubsub.ContinuousListener[animator.Tick]
	reload     *pubsub.ContinuousListener[watcher.Change]
	logs       *log.Listener
	logLines   []string

	enabled  bool
	langIdx  int
	showHelp bool
	showLogs bool
	width    int
	height   int
	errLine  string
}

// New creates the playground model and starts its animation timer.
// configPath may be empty (reloads disabled); reload, when non-nil,
// delivers debounced config-change events from the watcher.
func New(cfg config.Config, configPath string, reload *pubsub.ContinuousListener[watcher.Change]) Model {
	anim := animator.New(cfg.AnimationInterval, len(cfg.Colors))
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		cfg:         cfg,
		configPath:  configPath,
		keymap:      keys.DefaultKeyMap(),
		buffer:      NewBuffer(sampleText, "go"),
		engine:      highlight.NewEngine(match.NewFinder()),
		resolver:    style.NewResolver(cfg),
		decorations: highlight.NewDecorations(len(cfg.Colors)),
		anim:        anim,
		tickCancel:  cancel,
		ticks:       anim.Listener(ctx),
		reload:      reload,
		logs:        log.NewListener(ctx),
		enabled:     true,
		width:       80,
		height:      24,
	}
	m.cursorRow = m.buffer.LineCount() - 1
	m.cursorCol = m.buffer.LineLen(m.cursorRow)
	for i, lang := range keywords.Languages() {
		if lang == m.buffer.LanguageID() {
			m.langIdx = i
			break
		}
	}

	anim.Start()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.ticks.Listen()}
	if m.reload != nil {
		cmds = append(cmds, m.reload.Listen())
	}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pubsub.Event[animator.Tick]:
		m.phase = msg.Payload.Phase
		m.refresh()
		return m, m.ticks.Listen()

	case pubsub.Event[watcher.Change]:
		m.reloadConfig()
		if m.reload == nil {
			return m, nil
		}
		return m, m.reload.Listen()

	case log.Entry:
		m.logLines = append(m.logLines, strings.TrimRight(msg.Payload, "\n"))
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		if m.logs == nil {
			return m, nil
		}
		return m, m.logs.Listen()

	case debounceMsg:
		// Stale generations are keystrokes that were superseded; only
		// the latest pending refresh runs.
		if msg.gen == m.gen {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showLogs {
		if key.Matches(msg, m.keymap.Quit) {
			return m.quit()
		}
		m.showHelp = false
		m.showLogs = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keymap.Logs):
		m.showLogs = true
		return m, nil
	case key.Matches(msg, m.keymap.Toggle):
		m.toggleHighlighting()
		return m, nil
	case key.Matches(msg, m.keymap.ToggleGlow):
		v := !m.cfg.Glow
		return m.applyPartial(config.Partial{Glow: &v})
	case key.Matches(msg, m.keymap.ToggleUnderline):
		v := !m.cfg.WavyUnderline
		return m.applyPartial(config.Partial{WavyUnderline: &v})
	case key.Matches(msg, m.keymap.ToggleBlink):
		v := !m.cfg.Blink
		return m.applyPartial(config.Partial{Blink: &v})
	case key.Matches(msg, m.keymap.ToggleFade):
		v := !m.cfg.Fade
		return m.applyPartial(config.Partial{Fade: &v})
	case key.Matches(msg, m.keymap.TogglePulse):
		v := !m.cfg.Pulse
		return m.applyPartial(config.Partial{Pulse: &v})
	case key.Matches(msg, m.keymap.ToggleLanguage):
		v := !m.cfg.LanguageSpecific
		return m.applyPartial(config.Partial{LanguageSpecific: &v})
	case key.Matches(msg, m.keymap.SpeedUp):
		return m.setInterval(m.cfg.AnimationInterval / 2)
	case key.Matches(msg, m.keymap.SpeedDown):
		return m.setInterval(m.cfg.AnimationInterval * 2)
	case key.Matches(msg, m.keymap.NextLanguage):
		langs := keywords.Languages()
		m.langIdx = (m.langIdx + 1) % len(langs)
		m.buffer.SetLanguage(langs[m.langIdx])
		m.refresh()
		return m, nil
	}

	return m.updateEditing(msg)
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edited := false

	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.cursorCol = m.buffer.InsertRune(m.cursorRow, m.cursorCol, r)
		}
		edited = true
	case tea.KeySpace:
		m.cursorCol = m.buffer.InsertRune(m.cursorRow, m.cursorCol, ' ')
		edited = true
	case tea.KeyTab:
		m.cursorCol = m.buffer.InsertRune(m.cursorRow, m.cursorCol, '\t')
		edited = true
	case tea.KeyEnter:
		m.cursorRow, m.cursorCol = m.buffer.SplitLine(m.cursorRow, m.cursorCol)
		edited = true
	case tea.KeyBackspace:
		m.cursorRow, m.cursorCol = m.buffer.DeleteBack(m.cursorRow, m.cursorCol)
		edited = true
	case tea.KeyUp:
		m.cursorRow = clamp(m.cursorRow-1, 0, m.buffer.LineCount()-1)
		m.cursorCol = clamp(m.cursorCol, 0, m.buffer.LineLen(m.cursorRow))
	case tea.KeyDown:
		m.cursorRow = clamp(m.cursorRow+1, 0, m.buffer.LineCount()-1)
		m.cursorCol = clamp(m.cursorCol, 0, m.buffer.LineLen(m.cursorRow))
	case tea.KeyLeft:
		m.cursorCol = clamp(m.cursorCol-1, 0, m.buffer.LineLen(m.cursorRow))
	case tea.KeyRight:
		m.cursorCol = clamp(m.cursorCol+1, 0, m.buffer.LineLen(m.cursorRow))
	}

	if !edited {
		return m, nil
	}

	// Rearm the debounce: at most one pending refresh per burst.
	m.gen++
	gen := m.gen
	return m, tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.dispose()
	return m, tea.Quit
}

// dispose releases every owned resource. The animation timer stops
// synchronously, so no tick lands after quit.
func (m *Model) dispose() {
	m.anim.Close()
	m.engine.Dispose()
	m.decorations.Dispose()
	m.tickCancel()
}

func (m *Model) applyPartial(p config.Partial) (tea.Model, tea.Cmd) {
	next := m.cfg.Merge(p)
	if err := config.Validate(next); err != nil {
		m.errLine = err.Error()
		log.ErrorErr(log.CatConfig, "rejected config update", err)
		return *m, nil
	}
	m.applyConfig(next)
	return *m, nil
}

// applyConfig swaps in a new configuration: styles are rebuilt, the
// decoration slots resized, the animation timer retuned, and a full
// refresh runs so no stale highlight survives the change.
func (m *Model) applyConfig(next config.Config) {
	intervalChanged := next.AnimationInterval != m.cfg.AnimationInterval
	m.cfg = next
	m.errLine = ""

	m.resolver = style.NewResolver(next)
	m.decorations.Resize(len(next.Colors))
	m.anim.SetSlots(len(next.Colors))
	if intervalChanged {
		m.anim.SetInterval(next.AnimationInterval)
	}
	m.phase = m.anim.Phase()
	m.refresh()
}

func (m *Model) setInterval(d time.Duration) (tea.Model, tea.Cmd) {
	if d < minInterval {
		d = minInterval
	}
	if d > maxInterval {
		d = maxInterval
	}
	return m.applyPartial(config.Partial{AnimationInterval: &d})
}

// reloadConfig re-reads the config file after a watcher signal. Fields
// absent from the file keep their current values; an invalid file is
// rejected wholesale and reported in the status line.
func (m *Model) reloadConfig() {
	if m.configPath == "" {
		return
	}

	v := viper.New()
	v.SetConfigFile(m.configPath)
	if err := v.ReadInConfig(); err != nil {
		m.errLine = fmt.Sprintf("config reload: %v", err)
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", m.configPath)
		return
	}

	next := m.cfg
	if err := v.Unmarshal(&next); err != nil {
		m.errLine = fmt.Sprintf("config reload: %v", err)
		log.ErrorErr(log.CatConfig, "config unmarshal failed", err, "path", m.configPath)
		return
	}
	if err := config.Validate(next); err != nil {
		m.errLine = fmt.Sprintf("config reload: %v", err)
		log.ErrorErr(log.CatConfig, "reloaded config invalid", err, "path", m.configPath)
		return
	}

	log.Info(log.CatConfig, "config reloaded", "path", m.configPath)
	m.applyConfig(next)
}

// toggleHighlighting is the master switch. Disabling stops the
// animation timer and clears every decoration; enabling restarts the
// timer and refreshes immediately.
func (m *Model) toggleHighlighting() {
	if m.enabled {
		m.enabled = false
		m.anim.Stop()
		for slot := 0; slot < len(m.cfg.Colors); slot++ {
			m.decorations.SetSlot(slot, nil)
		}
		m.decorations.SetBlink(nil)
		return
	}
	m.enabled = true
	m.anim.Start()
	m.refresh()
}

func (m *Model) refresh() {
	if !m.enabled {
		return
	}
	m.engine.Refresh(context.Background(), m.buffer, m.decorations, m.cfg, m.phase)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}
	if m.showLogs {
		return m.logsView()
	}

	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	// Cursor-following scroll: the cursor row is always on screen.
	scroll := 0
	if m.cursorRow >= bodyHeight {
		scroll = m.cursorRow - bodyHeight + 1
	}

	var b strings.Builder
	rows := 0
	for row := scroll; row < m.buffer.LineCount() && rows < bodyHeight; row++ {
		cursorCol := -1
		if row == m.cursorRow {
			cursorCol = m.cursorCol
		}
		line := renderLine(m.buffer.Line(row), m.buffer.LineStart(row), m.decorations, m.resolver, cursorCol)
		if row == 0 && m.bufferEmpty() {
			line += styles.PlaceholderStyle.Render(" type some code · keywords light up as you go")
		}
		b.WriteString(line)
		b.WriteByte('\n')
		rows++
	}
	for ; rows < bodyHeight; rows++ {
		b.WriteByte('\n')
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) bufferEmpty() bool {
	return m.buffer.LineCount() == 1 && m.buffer.Line(0) == ""
}

// fitWidth truncates styled text to the terminal width, measuring the
// rendered width rather than the byte length.
func fitWidth(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return truncate.String(s, uint(width))
}

func (m Model) statusBar() string {
	if m.errLine != "" {
		line := styles.StatusBarStyle.Foreground(styles.StatusErrorColor).Render(m.errLine)
		return fitWidth(line, m.width)
	}

	mark := func(name string, on bool) string {
		if on {
			return styles.StatusOnStyle.Render(name)
		}
		return name
	}

	lang := m.buffer.LanguageID()
	if !m.cfg.LanguageSpecific {
		lang = "default"
	}

	if !m.enabled {
		bar := styles.StatusBarStyle.Render(lang + " · highlighting off · ctrl+t resume · ctrl+h help")
		return fitWidth(bar, m.width)
	}

	if len(m.buffer.Text()) > match.MaxDocumentLen {
		bar := styles.StatusWarnStyle.Render(lang + " · buffer too large, highlighting paused · ctrl+h help")
		return fitWidth(bar, m.width)
	}

	parts := []string{
		lang,
		fmt.Sprintf("phase %d/%d", m.phase, len(m.cfg.Colors)),
		m.cfg.AnimationInterval.String(),
		mark("glow", m.cfg.Glow),
		mark("wavy", m.cfg.WavyUnderline),
		mark("fade", m.cfg.Fade),
		mark("pulse", m.cfg.Pulse),
		mark("blink", m.cfg.Blink),
		"ctrl+h help",
	}
	bar := styles.StatusBarStyle.Render(strings.Join(parts, " · "))
	return fitWidth(bar, m.width)
}
