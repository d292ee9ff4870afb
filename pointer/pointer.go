// Package pointer provides helpers for the optional fields of the document model.
package pointer

// From returns a pointer to a copy of t.
func From[T any](t T) *T {
	return &t
}

// Value dereferences v, returning the zero value for nil.
func Value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
