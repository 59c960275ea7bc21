// Package highlight implements the decoration refresh engine: it turns
// a document, a configuration, and an animation phase into per-slot
// range sets on a rendering surface.
package highlight

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/keywords"
	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/match"
)

const (
	// blinkChance gates whether a given refresh shows a blink pulse.
	blinkChance = 0.3
	// blinkKeep is the per-range probability of joining the pulse.
	blinkKeep = 0.2
	// blinkDuration is how long the pulse lasts before reversal.
	blinkDuration = 200 * time.Millisecond
)

// Document is the engine's view of an open buffer.
type Document interface {
	// ID identifies the document for logging and tracing.
	ID() string
	Text() string
	LanguageID() string
}

// Surface receives decoration updates. Implementations own the mapping
// from slots to visual styles; the engine only assigns slot indices.
type Surface interface {
	// SetSlot replaces the ranges decorated with the given palette slot.
	// An empty set clears the slot.
	SetSlot(slot int, ranges []match.Range)
	// SetBlink replaces the transient blink ranges.
	SetBlink(ranges []match.Range)
	// Disposed reports whether the surface has been torn down.
	Disposed() bool
}

// Assignment records one keyword's slot and ranges from a refresh.
type Assignment struct {
	Keyword string
	Slot    int
	Ranges  []match.Range
}

// Engine orchestrates match scanning and slot assignment. One engine
// serves any number of documents; it holds no per-document state.
type Engine struct {
	finder   *match.Finder
	tracer   trace.Tracer
	rng      *rand.Rand
	after    func(time.Duration, func()) *time.Timer
	disposed atomic.Bool
}

// NewEngine creates an engine around the given finder.
func NewEngine(finder *match.Finder) *Engine {
	return &Engine{
		finder: finder,
		tracer: otel.Tracer("glimmer/highlight"),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // cosmetic blink selection, not security
		after:  time.AfterFunc,
	}
}

// Refresh recomputes and applies the highlight assignment for doc.
// It clears every slot, rescans, and assigns each matched keyword the
// style at (phase + walk position) mod palette size. Returns the
// applied assignment; nil when the refresh was skipped.
//
// A nil or disposed surface is a no-op. Documents longer than
// match.MaxDocumentLen are skipped without touching the surface.
func (e *Engine) Refresh(ctx context.Context, doc Document, surface Surface, cfg config.Config, phase int) []Assignment {
	if surface == nil || surface.Disposed() || e.disposed.Load() {
		return nil
	}

	text := doc.Text()
	if len(text) > match.MaxDocumentLen {
		log.Debug(log.CatRefresh, "document over size guard, skipping",
			"doc", doc.ID(), "len", len(text))
		return nil
	}

	ctx, span := e.tracer.Start(ctx, "highlight.refresh",
		trace.WithAttributes(
			attribute.String("document.id", doc.ID()),
			attribute.String("document.language", doc.LanguageID()),
			attribute.Int("phase", phase),
		))
	defer span.End()

	// Full clear before reapply: no stale range survives a keyword or
	// palette change. There is deliberately no incremental diffing.
	slots := len(cfg.Colors)
	for slot := 0; slot < slots; slot++ {
		surface.SetSlot(slot, nil)
	}
	surface.SetBlink(nil)

	kws := cfg.Keywords
	if cfg.LanguageSpecific {
		kws = keywords.Lookup(doc.LanguageID())
	}

	results := e.finder.Ranges(ctx, text, kws)
	if len(results) == 0 {
		span.SetAttributes(attribute.Int("matches", 0))
		return nil
	}

	// Walk in scan order; keywords landing on the same slot (more
	// matched keywords than palette entries) share it.
	assignments := make([]Assignment, len(results))
	slotRanges := make([][]match.Range, slots)
	total := 0
	for i, kr := range results {
		slot := (phase + i) % slots
		assignments[i] = Assignment{Keyword: kr.Keyword, Slot: slot, Ranges: kr.Ranges}
		slotRanges[slot] = append(slotRanges[slot], kr.Ranges...)
		total += len(kr.Ranges)
	}
	for slot, ranges := range slotRanges {
		if len(ranges) > 0 {
			surface.SetSlot(slot, ranges)
		}
	}
	span.SetAttributes(attribute.Int("matches", total), attribute.Int("keywords", len(results)))

	if cfg.Blink {
		e.blink(surface, slotRanges)
	}

	log.Debug(log.CatRefresh, "refresh applied",
		"doc", doc.ID(), "keywords", len(results), "matches", total, "phase", phase)
	return assignments
}

// blink flags a random subset of the matched ranges with the transient
// blink style and schedules its reversal. Fire-and-forget: the reversal
// checks liveness before touching the surface.
func (e *Engine) blink(surface Surface, slotRanges [][]match.Range) {
	if e.rng.Float64() >= blinkChance {
		return
	}

	var kept []match.Range
	for _, ranges := range slotRanges {
		for _, r := range ranges {
			if e.rng.Float64() < blinkKeep {
				kept = append(kept, r)
			}
		}
	}
	if len(kept) == 0 {
		return
	}

	surface.SetBlink(kept)
	e.after(blinkDuration, func() {
		if e.disposed.Load() || surface.Disposed() {
			return
		}
		surface.SetBlink(nil)
	})
}

// Dispose marks the engine dead. In-flight blink reversals become
// no-ops; further Refresh calls are skipped.
func (e *Engine) Dispose() {
	e.disposed.Store(true)
}
