package chain

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Chain is a generic, immutable-by-default wrapper around a slice of T,
// the analogue of underscore's chain(): wrap a sequence, apply a pipeline
// of transforms, then unwrap with [Chain.Value].
//
// Every transforming method returns a *new* Chain, leaving the receiver
// unchanged. That makes chains safe to read from multiple goroutines and
// keeps pipelines free of aliasing bugs:
//
//	top3 := chain.Of(9, 1, 8, 2, 7, 3).
//	    Filter(func(n, _ int) bool { return n > 1 }).
//	    SortBy(func(n int) float64 { return -float64(n) }).
//	    FirstN(3).
//	    Value() // [9 8 7]
//
// Go generics do not allow methods to introduce new type parameters, so
// transforms that change the element type live as package-level functions:
// [Map], [FlatMap], [Reduce], [Pluck], [GroupBy], [IndexBy], [CountBy],
// [Zip].
type Chain[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a Chain from a variadic list of items (copied).
func Of[T any](items ...T) *Chain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Chain[T]{items: dst}
}

// From creates a Chain from a slice (the slice is copied).
func From[T any](items []T) *Chain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Chain[T]{items: dst}
}

// Empty creates an empty Chain of type T.
func Empty[T any]() *Chain[T] {
	return &Chain[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

// Value unwraps the chain, returning a copy of the underlying slice.
func (c *Chain[T]) Value() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Size returns the number of items in the chain.
func (c *Chain[T]) Size() int { return len(c.items) }

// IsEmpty reports whether the chain contains no items.
func (c *Chain[T]) IsEmpty() bool { return len(c.items) == 0 }

// First returns the first item.
// Returns the zero value and false when the chain is empty.
func (c *Chain[T]) First() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last item.
// Returns the zero value and false when the chain is empty.
func (c *Chain[T]) Last() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Find returns the first item satisfying pred, or [ErrNoMatch].
func (c *Chain[T]) Find(pred func(T) bool) (T, error) {
	for _, item := range c.items {
		if pred(item) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNoMatch
}

// IndexOf returns the index of the first item satisfying pred, or -1.
func (c *Chain[T]) IndexOf(pred func(T) bool) int {
	for i, item := range c.items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Contains reports whether at least one item satisfies pred.
func (c *Chain[T]) Contains(pred func(T) bool) bool {
	return c.IndexOf(pred) >= 0
}

// Every reports whether pred holds for all items (vacuously true if empty).
func (c *Chain[T]) Every(pred func(T) bool) bool {
	for _, item := range c.items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one item.
func (c *Chain[T]) Some(pred func(T) bool) bool {
	return c.Contains(pred)
}

// Join concatenates all items into a string using sep, converting each item
// with fn.
func (c *Chain[T]) Join(sep string, fn func(T) string) string {
	parts := make([]string, len(c.items))
	for i, item := range c.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// String returns a JSON representation of the chain's items.
// It implements [fmt.Stringer].
func (c *Chain[T]) String() string {
	b, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item, in order.
func (c *Chain[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side-effects (logging, debugging) and returns c
// unchanged for further chaining.
func (c *Chain[T]) Tap(fn func(*Chain[T])) *Chain[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new chain with only the items for which fn(item, index)
// returns true.
func (c *Chain[T]) Filter(fn func(T, int) bool) *Chain[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &Chain[T]{items: out}
}

// Reject returns a new chain with items for which fn returns true removed.
// It is the complement of [Chain.Filter].
func (c *Chain[T]) Reject(fn func(T, int) bool) *Chain[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Compact returns a new chain with items for which keep returns false
// removed — underscore's compact with the truthiness test made explicit.
func (c *Chain[T]) Compact(keep func(T) bool) *Chain[T] {
	return c.Filter(func(item T, _ int) bool { return keep(item) })
}

// Uniq returns a new chain with duplicates removed, preserving the first
// occurrence. key extracts the comparison key; pass nil to compare items by
// their fmt representation.
func (c *Chain[T]) Uniq(key func(T) any) *Chain[T] {
	if key == nil {
		key = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	seen := make(map[any]struct{}, len(c.items))
	return c.Filter(func(item T, _ int) bool {
		k := key(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Reverse returns a new chain with items in reversed order.
func (c *Chain[T]) Reverse() *Chain[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return &Chain[T]{items: out}
}

// Sort returns a new chain sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (c *Chain[T]) Sort(less func(a, b T) bool) *Chain[T] {
	out := make([]T, len(c.items))
	copy(out, c.items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Chain[T]{items: out}
}

// SortBy returns a new chain sorted in ascending order by the float64 value
// extracted by fn.
func (c *Chain[T]) SortBy(fn func(T) float64) *Chain[T] {
	return c.Sort(func(a, b T) bool { return fn(a) < fn(b) })
}

// Shuffle returns a new chain with items in a randomly shuffled order.
func (c *Chain[T]) Shuffle() *Chain[T] {
	out := make([]T, len(c.items))
	copy(out, c.items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return &Chain[T]{items: out}
}

// Sample returns a new chain with n randomly selected items (without
// replacement). If n >= Size(), a shuffled copy of the full chain is
// returned.
func (c *Chain[T]) Sample(n int) *Chain[T] {
	s := c.Shuffle()
	if n >= s.Size() {
		return s
	}
	return s.FirstN(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Combining
// ─────────────────────────────────────────────────────────────────────────────

// FirstN returns at most n items from the start.
func (c *Chain[T]) FirstN(n int) *Chain[T] {
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return From(c.items[:n])
}

// RestN returns a new chain skipping the first n items (underscore's rest).
func (c *Chain[T]) RestN(n int) *Chain[T] {
	if n < 0 {
		n = 0
	}
	if n >= len(c.items) {
		return Empty[T]()
	}
	return From(c.items[n:])
}

// Initial returns all items except the last n.
func (c *Chain[T]) Initial(n int) *Chain[T] {
	if n < 0 {
		n = 0
	}
	end := len(c.items) - n
	if end < 0 {
		end = 0
	}
	return From(c.items[:end])
}

// Push returns a new chain with items appended.
func (c *Chain[T]) Push(items ...T) *Chain[T] {
	out := make([]T, len(c.items)+len(items))
	copy(out, c.items)
	copy(out[len(c.items):], items)
	return &Chain[T]{items: out}
}

// Concat returns a new chain with all items from other appended.
func (c *Chain[T]) Concat(other *Chain[T]) *Chain[T] {
	return c.Push(other.items...)
}

// Partition splits the chain in two: items for which pred returns true,
// then the rest.
func (c *Chain[T]) Partition(pred func(T) bool) (*Chain[T], *Chain[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return &Chain[T]{items: pass}, &Chain[T]{items: fail}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Chain[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for _, item := range c.items {
		sum += fn(item)
	}
	return sum
}

// Min returns the item with the smallest value extracted by fn.
// Returns the zero value and false if the chain is empty.
func (c *Chain[T]) Min(fn func(T) float64) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	minItem, minVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return minItem, true
}

// Max returns the item with the largest value extracted by fn.
// Returns the zero value and false if the chain is empty.
func (c *Chain[T]) Max(fn func(T) float64) (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	maxItem, maxVal := c.items[0], fn(c.items[0])
	for _, item := range c.items[1:] {
		if v := fn(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return maxItem, true
}
