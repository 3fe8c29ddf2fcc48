// Package fn provides function decorators in the underscore tradition:
// wrappers that control when, how often, and with what caching a
// user-supplied function runs.
//
//   - [Once] — run exactly once, replay the first result
//   - [Memoize], [MemoizeBy], [MemoizeArgs] — per-argument result caches
//   - [Delay] — run once after a duration
//   - [Throttle] — at most one run per interval, with a trailing call
//   - [Debounce] — run only after calls go quiet
//   - [After], [Before] — call-count gates
//   - [Negate], [Compose] — predicate and pipeline composition
//
// Every decorator owns a private cache or flag guarded for concurrent use;
// the wrapped function itself is assumed to tolerate being called from the
// timer goroutine for the time-based decorators.
package fn
