package highlight

import (
	"sync"

	"github.com/zjrosen/glimmer/internal/match"
)

// Decorations is the in-memory Surface used by the playground: it holds
// the current per-slot range sets and answers point queries during
// rendering. Safe for concurrent use; blink reversals arrive from a
// timer goroutine while the UI renders.
type Decorations struct {
	mu       sync.RWMutex
	slots    [][]match.Range
	blink    []match.Range
	disposed bool
}

// NewDecorations creates a surface with the given number of style slots.
func NewDecorations(slots int) *Decorations {
	return &Decorations{slots: make([][]match.Range, slots)}
}

// SetSlot replaces the ranges decorated with the given slot. Slots
// outside the allocated palette are ignored.
func (d *Decorations) SetSlot(slot int, ranges []match.Range) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed || slot < 0 || slot >= len(d.slots) {
		return
	}
	d.slots[slot] = ranges
}

// SetBlink replaces the transient blink ranges.
func (d *Decorations) SetBlink(ranges []match.Range) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return
	}
	d.blink = ranges
}

// Disposed reports whether Dispose has been called.
func (d *Decorations) Disposed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.disposed
}

// Dispose drops all ranges and marks the surface dead. Late writers
// (blink reversals) become no-ops.
func (d *Decorations) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disposed = true
	d.slots = nil
	d.blink = nil
}

// Resize replaces the slot table, dropping all current ranges. Called
// when the palette length changes.
func (d *Decorations) Resize(slots int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return
	}
	d.slots = make([][]match.Range, slots)
	d.blink = nil
}

// SlotAt returns the slot decorating the given byte offset, if any.
func (d *Decorations) SlotAt(offset int) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for slot, ranges := range d.slots {
		for _, r := range ranges {
			if offset >= r.Start && offset < r.End {
				return slot, true
			}
		}
	}
	return 0, false
}

// BlinkAt reports whether the blink pulse covers the given byte offset.
func (d *Decorations) BlinkAt(offset int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, r := range d.blink {
		if offset >= r.Start && offset < r.End {
			return true
		}
	}
	return false
}

// Slot returns a copy of the ranges currently decorated with slot.
func (d *Decorations) Slot(slot int) []match.Range {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if slot < 0 || slot >= len(d.slots) {
		return nil
	}
	out := make([]match.Range, len(d.slots[slot]))
	copy(out, d.slots[slot])
	return out
}

// BlinkRanges returns a copy of the current blink ranges.
func (d *Decorations) BlinkRanges() []match.Range {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]match.Range, len(d.blink))
	copy(out, d.blink)
	return out
}
