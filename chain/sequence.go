package chain

// Sequence is the minimal read surface satisfied by [Chain][T].
//
// Accept Sequence in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Chain type.
type Sequence[T any] interface {
	// Value returns a copy of every item as a plain Go slice.
	Value() []T

	// Size returns the number of items.
	Size() int

	// IsEmpty reports whether the sequence contains no items.
	IsEmpty() bool

	// Each calls fn(item, index) for every item, in order.
	Each(fn func(T, int))

	// First returns the first item, or the zero value and false when the
	// sequence is empty.
	First() (T, bool)

	// Last returns the last item, or the zero value and false when the
	// sequence is empty.
	Last() (T, bool)
}
