package ptr

// To returns a pointer to a copy of the provided value, useful for constants and SDK fields which take pointers.
func To[V any](v V) *V {
	return &v
}

// From dereferences the given pointer or returns the zero value if <nil>.
func From[V any](v *V) V {
	if v != nil {
		return *v
	}

	return *new(V)
}
