package dict

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	vals := make([]V, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

// Has reports whether key exists in m.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Entry is a single key-value pair, the element type of [Pairs].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Pairs returns the entries of m in unspecified order.
func Pairs[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// FromPairs builds a map from entries.
// When entries share a key, the last one wins.
func FromPairs[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// Invert returns a map with m's keys and values swapped.
// When values collide, the surviving key is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every key-value pair of each source into dst, in order,
// overwriting existing keys. The destination is mutated and returned.
func Extend[K comparable, V any](dst map[K]V, sources ...map[K]V) map[K]V {
	for _, src := range sources {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults fills keys missing from dst with values from sources, in order.
// Existing keys in dst are never overwritten, so the first source providing
// a key wins. The destination is mutated and returned.
func Defaults[K comparable, V any](dst map[K]V, sources ...map[K]V) map[K]V {
	for _, src := range sources {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}

// Clone returns a shallow copy of m.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new map containing only the specified keys.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the specified keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// MapValues transforms every value of m with fn, keeping the keys.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// MapKeys transforms every key of m with fn, keeping the values.
// When transformed keys collide, the surviving value is unspecified.
func MapKeys[K, J comparable, V any](m map[K]V, fn func(K) J) map[J]V {
	out := make(map[J]V, len(m))
	for k, v := range m {
		out[fn(k)] = v
	}
	return out
}

// ToMap builds a map from a slice, deriving each entry with fn.
// When entries share a key, the last one wins.
func ToMap[T any, K comparable, V any](items []T, fn func(T) (K, V)) map[K]V {
	out := make(map[K]V, len(items))
	for _, item := range items {
		k, v := fn(item)
		out[k] = v
	}
	return out
}
