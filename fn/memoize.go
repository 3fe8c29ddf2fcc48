package fn

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Memoize wraps a single-argument function with a per-argument cache: each
// distinct argument is computed once and replayed afterwards.
//
// The cache lock is not held while fn runs, so a memoized function may call
// itself recursively (memoized fibonacci works). The trade-off is that two
// goroutines racing on the same fresh argument may both compute it; the
// cache still ends up with a single entry.
//
//	fib = fn.Memoize(func(n int) int {
//	    if n < 2 { return n }
//	    return fib(n-1) + fib(n-2)
//	})
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	var mu sync.Mutex
	cache := make(map[K]V)
	return func(k K) V {
		mu.Lock()
		v, ok := cache[k]
		mu.Unlock()
		if ok {
			return v
		}
		v = fn(k)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}

// MemoizeBy is [Memoize] for argument types that are not comparable:
// key extracts the cache key from the argument.
//
//	area := fn.MemoizeBy(computeArea, func(p Polygon) string { return p.ID })
func MemoizeBy[T any, K comparable, V any](fn func(T) V, key func(T) K) func(T) V {
	var mu sync.Mutex
	cache := make(map[K]V)
	return func(arg T) V {
		k := key(arg)
		mu.Lock()
		v, ok := cache[k]
		mu.Unlock()
		if ok {
			return v
		}
		v = fn(arg)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}

// MemoizeArgs memoizes a variadic function. The cache key is an xxhash of
// each argument's dynamic type and formatted value, so arguments only need
// a stable fmt representation, not comparability.
func MemoizeArgs[V any](fn func(...any) V) func(...any) V {
	var mu sync.Mutex
	cache := make(map[uint64]V)
	return func(args ...any) V {
		k := argsKey(args)
		mu.Lock()
		v, ok := cache[k]
		mu.Unlock()
		if ok {
			return v
		}
		v = fn(args...)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}

func argsKey(args []any) uint64 {
	d := xxhash.New()
	for _, a := range args {
		fmt.Fprintf(d, "%T:%v;", a, a)
	}
	return d.Sum64()
}
