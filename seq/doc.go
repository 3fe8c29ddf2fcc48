// Package seq provides standalone, generic helper functions for Go slices
// in the underscore tradition: searching, transforming, reducing, set
// operations, restructuring, and sorting — all over plain []T values, no
// wrapper type required.
//
// # Purity
//
// Every function leaves its input untouched and returns a fresh slice (or a
// scalar). This makes seq values safe to share across goroutines without
// locking and keeps pipelines free of aliasing surprises:
//
//	evens := seq.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := seq.Pluck(users, func(u User) string { return u.Name })
//	byAge := seq.SortBy(users, func(u User) float64 { return float64(u.Age) })
//
// # Optional-value returns
//
// Operations that may find nothing ([First], [Last], [Find]) return
// (T, bool) rather than an error or a pointer:
//
//	v, ok := seq.Find(nums, func(n int) bool { return n > 10 })
//
// # First/Last and counted variants
//
// Underscore's first(array, n) has two shapes; Go expresses them as two
// functions: [First] returns the single first element, [FirstN] returns the
// first n as a slice. [Last]/[LastN] are symmetric.
//
// For a chainable wrapper around these operations see the chain package.
package seq
