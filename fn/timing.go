package fn

import (
	"sync"
	"time"
)

// Delay schedules fn to run once after d elapses, on its own goroutine.
// The returned timer can stop a pending call via its Stop method.
func Delay(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, fn)
}

// Throttle wraps fn so it runs at most once per interval.
//
// The first call in an interval window runs immediately (leading edge). A
// call landing inside the window schedules a single future invocation at
// the window boundary (trailing edge); further calls inside the same window
// are dropped. Safe for concurrent use.
//
//	onScroll := fn.Throttle(redraw, 100*time.Millisecond)
func Throttle(fn func(), interval time.Duration) func() {
	var mu sync.Mutex
	var last time.Time
	var trailing *time.Timer
	return func() {
		mu.Lock()
		now := time.Now()
		elapsed := now.Sub(last)
		if last.IsZero() || elapsed >= interval {
			last = now
			if trailing != nil {
				trailing.Stop()
				trailing = nil
			}
			mu.Unlock()
			fn()
			return
		}
		if trailing == nil {
			trailing = time.AfterFunc(interval-elapsed, func() {
				mu.Lock()
				last = time.Now()
				trailing = nil
				mu.Unlock()
				fn()
			})
		}
		mu.Unlock()
	}
}

// Debounce wraps fn so it runs wait after the most recent call.
// Each call resets the timer, so a burst of calls produces a single
// invocation once the calls go quiet. Safe for concurrent use.
//
//	onKeystroke := fn.Debounce(search, 250*time.Millisecond)
func Debounce(fn func(), wait time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}
