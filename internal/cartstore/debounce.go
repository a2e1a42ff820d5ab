package cartstore

import (
	"sync"
	"time"
)

// debouncer coalesces rapid calls into one: the function runs only after the
// window has elapsed without a new call. Used to batch quantity changes for a
// single cart line into one remote update carrying the final quantity.
type debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

func newDebouncer(duration time.Duration) *debouncer {
	return &debouncer{duration: duration}
}

// debounce schedules fn, resetting any pending timer.
func (d *debouncer) debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// cancel drops any pending call and reports whether one was pending.
func (d *debouncer) cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
