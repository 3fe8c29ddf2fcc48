package dict

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-path helpers for map[string]any
//
// These functions read, write, and test values in deeply nested
// map[string]any structures using dot-separated key paths.
//
// Example map:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	PathGet(m, "user.address.city")  → "London"
//	PathSet(m, "user.age", 30)
//	PathHas(m, "user.name")          → true
//	PathForget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// PathGet retrieves a value from m using a dot-separated path.
// Returns def[0] (or nil) when the path does not resolve.
//
//	PathGet(m, "user.address.city")        // "London"
//	PathGet(m, "user.missing", "default")  // "default"
func PathGet(m map[string]any, path string, def ...any) any {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(map[string]any)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = nested
	}
	return nil
}

// PathSet writes value into m at the dot-separated path, creating
// intermediate maps as needed.
//
//	PathSet(m, "user.address.postcode", "EC1")
func PathSet(m map[string]any, path string, value any) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		m[path] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	PathSet(nested, rest, value)
}

// PathHas reports whether the dot-separated path resolves in m.
func PathHas(m map[string]any, path string) bool {
	return hasPath(m, strings.Split(path, "."))
}

func hasPath(m map[string]any, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return false
	}
	return hasPath(nested, segments[1:])
}

// PathForget removes the dot-separated path from m.
// Intermediate maps are not cleaned up.
func PathForget(m map[string]any, path string) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		delete(m, path)
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	PathForget(nested, rest)
}

// Dot flattens a nested map[string]any into a single-level map using dotted
// keys.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dotted-key map into a nested map[string]any.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		PathSet(out, key, val)
	}
	return out
}
