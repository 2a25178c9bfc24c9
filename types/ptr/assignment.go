// Package ptr provides generic utility functions for operating on/creating pointers.
package ptr

// SetIfNil sets the pointer pointed to by 'p' to 'otherP' if it's currently <nil>; used when defaulting options.
func SetIfNil[V any](p **V, otherP *V) {
	if p == nil || *p != nil {
		return
	}

	*p = otherP
}
