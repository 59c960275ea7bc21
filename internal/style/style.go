// Package style builds the terminal decorations for the highlight
// palette and resamples the continuous fade/pulse effects.
package style

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/log"
)

// glowTint is how far a keyword's color bleeds into its background cell
// when glow is on. Terminals have no shadow blur, so the original
// three-radius glow collapses to this single low-alpha tint.
const glowTint = 0.08

// blinkDim is the fixed low opacity of the transient blink style.
const blinkDim = 0.3

// Decoration is one palette slot's visual description. There are
// exactly len(cfg.Colors) decorations live at any time; they are
// rebuilt whenever the configuration changes.
type Decoration struct {
	// Color is the palette hex this slot renders in.
	Color string

	base lipgloss.Style
}

// Resolver maps palette positions to lipgloss styles. The static parts
// of each decoration are computed once; Sample layers the wall-clock
// fade and pulse effects on every call, so animation stays smooth even
// between phase ticks.
type Resolver struct {
	cfg  config.Config
	decs []Decoration
	bg   colorful.Color
	now  func() time.Time
}

// NewResolver builds a resolver for cfg. cfg.Colors must be non-empty
// (config.Validate enforces this at the boundary).
func NewResolver(cfg config.Config) *Resolver {
	return newResolver(cfg, time.Now, lipgloss.HasDarkBackground())
}

func newResolver(cfg config.Config, now func() time.Time, darkBG bool) *Resolver {
	bg := colorful.Color{R: 1, G: 1, B: 1}
	if darkBG {
		bg = colorful.Color{}
	}

	r := &Resolver{cfg: cfg, bg: bg, now: now}
	r.decs = make([]Decoration, len(cfg.Colors))
	for i, hex := range cfg.Colors {
		r.decs[i] = r.buildDecoration(hex)
	}
	log.Debug(log.CatStyle, "decorations built", "count", len(r.decs),
		"glow", cfg.Glow, "fade", cfg.Fade, "pulse", cfg.Pulse)
	return r
}

func (r *Resolver) buildDecoration(hex string) Decoration {
	base := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
	if r.cfg.WavyUnderline {
		base = base.Underline(true)
	}
	if r.cfg.Glow {
		tint := r.blend(hex, glowTint)
		base = base.Background(lipgloss.Color(tint.Hex()))
	}
	return Decoration{Color: hex, base: base}
}

// Decorations returns the palette's decorations in rotation order.
func (r *Resolver) Decorations() []Decoration {
	return r.decs
}

// Len returns the number of palette slots.
func (r *Resolver) Len() int {
	return len(r.decs)
}

// Sample returns the style for palette position pos at the current
// wall-clock instant. Fade and pulse are continuous functions of time,
// not of the phase counter: two calls in the same tick can differ.
func (r *Resolver) Sample(pos int) lipgloss.Style {
	d := r.decs[pos%len(r.decs)]
	st := d.base

	nowMs := float64(r.now().UnixMilli())
	intervalMs := float64(r.cfg.AnimationInterval.Milliseconds())

	if r.cfg.Fade {
		opacity := 0.7 + 0.3*math.Sin(nowMs/intervalMs+float64(pos))
		faded := r.blend(d.Color, opacity)
		st = st.Foreground(lipgloss.Color(faded.Hex()))
	}

	if r.cfg.Pulse {
		// Cells cannot scale. The pulse maps to a weight cue: bold on
		// the upswing, normal weight on the downswing.
		scale := 1.0 + 0.1*math.Sin(nowMs/(intervalMs*0.5)+float64(pos))
		st = st.Bold(scale >= 1.0)
	}

	return st
}

// Blink returns the fixed low-opacity style applied to the transient
// blink subset. It does not depend on the palette position.
func (r *Resolver) Blink() lipgloss.Style {
	dimmed := r.blend(r.decs[0].Color, blinkDim)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(dimmed.Hex()))
}

// blend mixes hex toward the terminal background: opacity 1 is the
// pure color, 0 is the background. Invalid hex degrades to the
// background rather than failing the refresh.
func (r *Resolver) blend(hex string, opacity float64) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		log.ErrorErr(log.CatStyle, "bad palette color", err, "color", hex)
		return r.bg
	}
	opacity = math.Max(0, math.Min(1, opacity))
	return r.bg.BlendRgb(c, opacity).Clamped()
}
