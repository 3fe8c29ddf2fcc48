package fn

import "sync"

// Once wraps fn so it executes at most once.
// Every later call returns the result of the first execution.
// Safe for concurrent use: racing callers observe exactly one execution.
//
//	init := fn.Once(loadConfig)
//	cfg := init() // loads
//	cfg = init()  // cached
func Once[T any](fn func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() { result = fn() })
		return result
	}
}

// After wraps fn so it runs only on the nth call and every call after that.
// Calls before the nth are silently dropped.
func After(n int, fn func()) func() {
	var mu sync.Mutex
	calls := 0
	return func() {
		mu.Lock()
		calls++
		run := calls >= n
		mu.Unlock()
		if run {
			fn()
		}
	}
}

// Before wraps fn so it runs at most n-1 times.
// Once the limit is reached, the result of the last execution is replayed.
// With n <= 1, fn never runs and the zero value is returned.
func Before[T any](n int, fn func() T) func() T {
	var mu sync.Mutex
	calls := 0
	var last T
	return func() T {
		mu.Lock()
		defer mu.Unlock()
		if calls < n-1 {
			calls++
			last = fn()
		}
		return last
	}
}
