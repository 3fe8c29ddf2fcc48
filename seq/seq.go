package seq

import (
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns its argument unchanged.
//
// Useful as a default transformer or as a truthiness probe in pipelines:
//
//	seq.Map(items, func(v int, _ int) int { return seq.Identity(v) })
func Identity[T any](v T) T { return v }

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements.
// n is clamped to len(items); n <= 0 yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements.
// n is clamped to len(items); n <= 0 yields an empty slice.
func LastN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

// Each calls fn(item, index) for every element, in order.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// Find returns the first element satisfying pred.
// Returns the zero value and false when no element matches.
func Find[T any](items []T, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[T any](items []T, pred func(T) bool) int {
	for i, item := range items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Every reports whether pred holds for all elements.
// Vacuously true for an empty slice.
func Every[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element.
// False for an empty slice.
func Some[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce folds items left-to-right into a single value of type U.
// fn receives the running accumulator, the element, and its index.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a value of type U from each element of type T.
//
//	names := seq.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, preserving the first
// occurrence of each value.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqBy returns elements with duplicates removed using a key function.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Without returns a copy of items with all instances of values removed.
func Without[T comparable](items []T, values ...T) []T {
	drop := make(map[T]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, skip := drop[item]; !skip {
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the values of first that are present in every slice
// of rest, in first's order, deduplicated.
func Intersection[T comparable](first []T, rest ...[]T) []T {
	sets := make([]map[T]struct{}, len(rest))
	for i, other := range rest {
		sets[i] = make(map[T]struct{}, len(other))
		for _, v := range other {
			sets[i][v] = struct{}{}
		}
	}
	out := make([]T, 0)
	emitted := make(map[T]struct{})
	for _, v := range first {
		if _, dup := emitted[v]; dup {
			continue
		}
		inAll := true
		for _, set := range sets {
			if _, ok := set[v]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			emitted[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the values of first that are present in none of the
// slices of rest, in first's order.
func Difference[T comparable](first []T, rest ...[]T) []T {
	drop := make(map[T]struct{})
	for _, other := range rest {
		for _, v := range other {
			drop[v] = struct{}{}
		}
	}
	out := make([]T, 0, len(first))
	for _, v := range first {
		if _, skip := drop[v]; !skip {
			out = append(out, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten flattens a slice of slices into a single flat slice (one level).
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// FlattenDeep recursively flattens any nested []any structure.
func FlattenDeep(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out = append(out, val)
		}
	}
	flatten(items)
	return out
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty [][]T when size <= 0 or items is empty.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Partition splits items into two slices: those satisfying pred and those
// that do not.
func Partition[T any](items []T, pred func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if pred(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// GroupBy groups items by a comparable key K extracted by fn.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// IndexBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func IndexBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// CountBy counts items per comparable key K extracted by fn.
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[fn(item)]++
	}
	return counts
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of items sorted in ascending order by the float64
// value extracted by fn.
func SortBy[T any](items []T, fn func(T) float64) []T {
	return Sort(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Sample[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return s[:n]
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range generates a slice of integers:
//
//	Range(stop)               // 0, 1, …, stop-1
//	Range(start, stop)        // start, start+1, …, stop-1
//	Range(start, stop, step)  // start, start+step, … while approaching stop
//
// A step of 0, or a step that walks away from stop, yields an empty slice.
func Range(args ...int) []int {
	start, stop, step := 0, 0, 1
	switch len(args) {
	case 0:
		return []int{}
	case 1:
		stop = args[0]
	case 2:
		start, stop = args[0], args[1]
	default:
		start, stop, step = args[0], args[1], args[2]
	}
	if step == 0 {
		return []int{}
	}
	n := (stop - start) / step
	if (stop-start)%step != 0 {
		n++
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+i*step)
	}
	return out
}
