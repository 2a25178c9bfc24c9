// Package definitions provides useful error types such as 'MultiError'.
package definitions

import (
	"strings"
)

// defaultSeparator is used between errors when 'MultiError.Separator' is empty.
const defaultSeparator = "; "

// MultiError collects errors which occur independently of one another, for example the error returned by a callback
// and the error returned when closing the resource it was operating on. The zero value is ready for use.
//
// NOTE: Not safe for concurrent use.
type MultiError struct {
	errs []error

	// Prefix is written once, before the first error.
	Prefix string

	// Separator is written between errors, defaults to "; ".
	Separator string
}

// Add records the given error; <nil> and the MultiError itself are ignored.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	if other, ok := err.(*MultiError); ok && other == m {
		return
	}

	m.errs = append(m.errs, err)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	msgs := make([]string, 0, len(m.errs))
	for _, err := range m.errs {
		msgs = append(msgs, err.Error())
	}

	sep := m.Separator
	if sep == "" {
		sep = defaultSeparator
	}

	return m.Prefix + strings.Join(msgs, sep)
}

// Unwrap allows 'errors.Is' and 'errors.As' to match any of the collected errors.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// Errors returns the collected errors, callers must not modify the returned slice.
func (m *MultiError) Errors() []error {
	return m.errs
}

// ErrOrNil returns the MultiError when it holds at least one error, allowing 'return errs.ErrOrNil()' in place of a
// length check.
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) == 0 {
		return nil
	}

	return m
}
