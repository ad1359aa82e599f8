package search

import (
	"sync"
	"time"
)

// Debouncer holds a single pending timer. Every Trigger resets it, so the
// callback fires once with the latest query after the quiet period.
type Debouncer struct {
	delay time.Duration
	fire  func(query string)

	mu      sync.Mutex
	pending *time.Timer
	stopped bool
}

func NewDebouncer(delay time.Duration, fire func(query string)) *Debouncer {
	return &Debouncer{delay: delay, fire: fire}
}

// Trigger schedules fire(query), replacing any pending schedule.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.delay, func() {
		d.fire(query)
	})
}

// Stop cancels any pending fire; the debouncer is unusable afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
