// Package chain provides a generic, fluent Chain type for composing
// sequence operations as pipelines, the analogue of underscore's chain().
//
// # Overview
//
// The central type is [Chain][T], a generic wrapper around a slice of T
// with a chainable API:
//
//	result := chain.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    SortBy(func(n int) float64 { return -float64(n) }).
//	    FirstN(3).
//	    Join(", ", strconv.Itoa) // → "10, 8, 6"
//
// # Immutability
//
// All transformation methods return a *new* Chain, leaving the original
// unchanged. This makes Chain values safe to pass across goroutines without
// locking and avoids accidental aliasing bugs in pipelines.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [FlatMap], [Reduce], [Pluck], [GroupBy], [IndexBy], [CountBy],
// [Zip], [Object], [Flatten].
//
// # Mixins (runtime extension)
//
// Register named functions at runtime via [RegisterMixin] and call them
// through [Chain.Mixin] — underscore's _.mixin:
//
//	chain.RegisterMixin("evens", func(c any, _ ...any) any {
//	    return c.(*chain.Chain[int]).Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := chain.Of(1, 2, 3, 4).Mixin("evens")
//
// For one-shot operations over plain slices and maps — no wrapper type —
// see the seq and dict packages.
package chain
