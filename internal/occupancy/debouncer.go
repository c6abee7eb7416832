package occupancy

import (
	"sync"
	"time"
)

// DefaultDebounceDelay coalesces bursts of change events into one pass
const DefaultDebounceDelay = time.Second

// Debouncer schedules one reconciliation pass per sector after a quiet
// period. Repeated triggers for the same sector reset its timer, so a burst
// of housing changes produces a single pass.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[uint]*time.Timer
	fn     func(fermeID uint)
	closed bool
}

// NewDebouncer creates a debouncer invoking fn after delay of quiet per sector
func NewDebouncer(delay time.Duration, fn func(fermeID uint)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{
		delay:  delay,
		timers: make(map[uint]*time.Timer),
		fn:     fn,
	}
}

// Trigger requests a reconciliation pass for the sector, resetting any
// already pending timer for it
func (d *Debouncer) Trigger(fermeID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if timer, ok := d.timers[fermeID]; ok {
		timer.Reset(d.delay)
		return
	}

	d.timers[fermeID] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, fermeID)
		closed := d.closed
		d.mu.Unlock()

		if !closed {
			d.fn(fermeID)
		}
	})
}

// Stop cancels all pending timers. Pending passes that have not fired are
// dropped.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for fermeID, timer := range d.timers {
		timer.Stop()
		delete(d.timers, fermeID)
	}
}
