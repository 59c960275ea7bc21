// Package animator drives the color rotation: a repeating timer that
// advances the global phase counter and broadcasts ticks.
package animator

import (
	"context"
	"sync"
	"time"

	"github.com/zjrosen/glimmer/internal/log"
	"github.com/zjrosen/glimmer/internal/pubsub"
)

// Tick is the payload broadcast on every phase advance.
type Tick struct {
	// Phase is the palette index after the advance.
	Phase int
}

// Animator owns the phase counter. The counter only moves on timer
// ticks; subscribers refresh their documents in response.
type Animator struct {
	mu       sync.Mutex
	interval time.Duration
	slots    int
	phase    int
	running  bool
	done     chan struct{}
	loopDone sync.WaitGroup

	broker *pubsub.Broker[Tick]
}

// New creates a stopped animator. slots is the palette length the phase
// wraps at; it must be positive.
func New(interval time.Duration, slots int) *Animator {
	return &Animator{
		interval: interval,
		slots:    slots,
		broker:   pubsub.NewBroker[Tick](),
	}
}

// Subscribe returns a channel of ticks, cleaned up when ctx ends.
func (a *Animator) Subscribe(ctx context.Context) <-chan pubsub.Event[Tick] {
	return a.broker.Subscribe(ctx)
}

// Listener returns a Bubble Tea continuous listener for ticks.
func (a *Animator) Listener(ctx context.Context) *pubsub.ContinuousListener[Tick] {
	return pubsub.NewContinuousListener(ctx, a.broker)
}

// Phase returns the current palette phase.
func (a *Animator) Phase() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Start launches the repeating timer. Starting a running animator is a
// no-op.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}
	a.running = true
	a.done = make(chan struct{})
	a.loopDone.Add(1)
	go a.loop(a.interval, a.done)
	log.Debug(log.CatAnim, "animator started", "interval", a.interval, "slots", a.slots)
}

// Stop cancels the timer synchronously: no tick is published after Stop
// returns. Idempotent.
func (a *Animator) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.done)
	a.mu.Unlock()

	a.loopDone.Wait()
	log.Debug(log.CatAnim, "animator stopped")
}

// SetInterval changes the timer period. A running timer never adapts
// mid-flight: the loop is stopped and restarted with the new interval.
func (a *Animator) SetInterval(interval time.Duration) {
	if interval <= 0 {
		log.Warn(log.CatAnim, "ignoring non-positive interval", "interval", interval)
		return
	}

	a.mu.Lock()
	wasRunning := a.running
	a.interval = interval
	a.mu.Unlock()

	if wasRunning {
		a.Stop()
		a.Start()
	}
}

// SetSlots updates the palette length the phase wraps at, clamping the
// phase into the new range.
func (a *Animator) SetSlots(slots int) {
	if slots <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.slots = slots
	a.phase %= slots
}

// Close stops the animator and shuts down its broker.
func (a *Animator) Close() {
	a.Stop()
	a.broker.Close()
}

func (a *Animator) loop(interval time.Duration, done chan struct{}) {
	defer a.loopDone.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			select {
			case <-done:
				return
			default:
			}
			a.mu.Lock()
			a.phase = (a.phase + 1) % a.slots
			phase := a.phase
			a.mu.Unlock()
			a.broker.Publish(pubsub.TickEvent, Tick{Phase: phase})
		}
	}
}
