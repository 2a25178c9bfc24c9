package objfile

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when operating on a file which has already been closed.
	ErrClosed = errors.New("file already closed")

	// ErrNoClient is returned when opening a file without providing a client.
	ErrNoClient = errors.New("a client is required")

	// ErrInvalidLocation is returned when the location of a file doesn't name both a bucket and a key.
	ErrInvalidLocation = errors.New("location must include both a bucket and a key")

	// ErrProviderMismatch is returned when a location names a provider other than the one the client connects to.
	ErrProviderMismatch = errors.New("location provider does not match the client provider")

	// ErrNegativeOffset is returned when seeking to a position before the start of the file.
	ErrNegativeOffset = errors.New("negative position")

	// ErrInvalidWhence is returned when seeking with an unknown whence.
	ErrInvalidWhence = errors.New("invalid whence")

	// ErrNegativeSize is returned when truncating to a negative size.
	ErrNegativeSize = errors.New("negative size")

	// ErrSizeTooLarge is returned when truncating or writing would grow the file beyond 'MaxSize'.
	ErrSizeTooLarge = errors.New("size exceeds the maximum object size")
)

// UsageError is returned when a file is used incorrectly e.g. after it has been closed. These errors indicate a
// programming error and the state of the file is unchanged.
type UsageError struct {
	Op  string
	Err error
}

// Error implements the 'error' interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid use of '%s': %s", e.Op, e.Err)
}

// Unwrap returns the underlying error, allowing comparison with the sentinel errors using 'errors.Is'.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError returns a boolean indicating whether the given error is a 'UsageError'.
func IsUsageError(err error) bool {
	var usageError *UsageError
	return errors.As(err, &usageError)
}
