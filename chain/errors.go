package chain

import "errors"

// Sentinel errors returned by Chain operations.
var (
	// ErrNoMatch is returned by Find when no item satisfies the predicate.
	ErrNoMatch = errors.New("chain: no items match the given condition")

	// ErrMismatchedLengths is returned by Object when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("chain: keys and values must have the same length")

	// ErrMixinNotFound is returned when an unregistered mixin name is called.
	ErrMixinNotFound = errors.New("chain: mixin not found")
)
