package fn

// Negate returns the complement of pred.
func Negate[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// Compose returns the composition of fns, applied right to left:
// Compose(f, g)(x) = f(g(x)). With no functions it is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}
