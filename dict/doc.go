// Package dict provides generic helper functions for Go maps in the
// underscore tradition: inspecting, merging, filtering, and transforming
// key-value mappings.
//
// # Generic helpers
//
// Most helpers work on any map[K]V and return fresh maps:
//
//	keys := dict.Keys(settings)
//	cfg  := dict.Defaults(userCfg, systemCfg)  // fill missing keys only
//	all  := dict.Extend(base, overrides)       // overwrite left-to-right
//	safe := dict.Omit(payload, "password")
//
// [Extend], [Defaults], and the Path* writers mutate their destination by
// contract (mirroring underscore's extend/defaults); everything else
// returns a new map.
//
// # Dot-path access
//
// Nested map[string]any structures can be read and written with
// dot-separated paths:
//
//	dict.PathGet(m, "user.address.city")
//	dict.PathSet(m, "user.address.postcode", "EC1")
//	flat := dict.Dot(m) // {"user.name": "Alice", …}
package dict
