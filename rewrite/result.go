package rewrite

// Result is the outcome of a rewrite callback: either a replacement value or
// "keep the node as it is". The zero value keeps the node, so replacing a
// node with a zero value (for example a nil expression) stays distinguishable
// from declining.
type Result[T any] struct {
	value T
	ok    bool
}

// Replace returns a Result that substitutes v for the visited node.
func Replace[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Keep returns a Result that leaves the visited node unchanged.
func Keep[T any]() Result[T] {
	return Result[T]{}
}

// Get returns the replacement and whether one is present.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Replaced reports whether the Result carries a replacement.
func (r Result[T]) Replaced() bool {
	return r.ok
}
