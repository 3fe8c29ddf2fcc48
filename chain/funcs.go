package chain

// This file contains package-level generic functions for operations that
// transform a Chain[T] into a Chain[U] or a map (T ≠ U). Go generics do not
// allow methods to introduce their own type parameters, so these operations
// are stand-alone functions designed to compose with method chains:
//
//	names := chain.Map(
//	    chain.From(users).Filter(func(u User, _ int) bool { return u.Active }),
//	    func(u User, _ int) string { return u.Name },
//	)

// Map applies fn to every item and returns a new Chain[U].
func Map[T, U any](c *Chain[T], fn func(T, int) U) *Chain[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Chain[U]{items: out}
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Chain[U].
func FlatMap[T, U any](c *Chain[T], fn func(T, int) []U) *Chain[U] {
	out := make([]U, 0, len(c.items))
	for i, item := range c.items {
		out = append(out, fn(item, i)...)
	}
	return &Chain[U]{items: out}
}

// Reduce folds Chain[T] left-to-right into a single value of type U.
func Reduce[T, U any](c *Chain[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a single field U from every item T.
//
//	names := chain.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Chain[T], fn func(T) U) *Chain[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Chain[U]{items: out}
}

// GroupBy groups items by the comparable key K extracted by fn.
func GroupBy[T any, K comparable](c *Chain[T], fn func(T) K) map[K]*Chain[T] {
	groups := make(map[K]*Chain[T])
	for _, item := range c.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// IndexBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
func IndexBy[T any, K comparable](c *Chain[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}

// CountBy counts items per comparable key K extracted by fn.
func CountBy[T any, K comparable](c *Chain[T], fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range c.items {
		counts[fn(item)]++
	}
	return counts
}

// Zip combines two chains element-by-element into Pairs.
// Stops at the shorter of the two chains.
func Zip[A, B any](a *Chain[A], b *Chain[B]) *Chain[Pair[A, B]] {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &Chain[Pair[A, B]]{items: out}
}

// Object creates a map from equal-length key and value slices —
// underscore's object(list, values). Returns [ErrMismatchedLengths] when
// len(keys) != len(values).
func Object[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// Flatten flattens a Chain[[]T] into a Chain[T] (one level only).
func Flatten[T any](c *Chain[[]T]) *Chain[T] {
	total := 0
	for _, group := range c.items {
		total += len(group)
	}
	out := make([]T, 0, total)
	for _, group := range c.items {
		out = append(out, group...)
	}
	return &Chain[T]{items: out}
}
