package objerr

import (
	"errors"
	"fmt"
)

// BucketCreationError is returned when the creation of a missing bucket was requested, but either checking for its
// existence or creating it failed.
type BucketCreationError struct {
	Bucket string
	Err    error
}

// Error implements the 'error' interface.
func (e *BucketCreationError) Error() string {
	return fmt.Sprintf("failed to create bucket '%s': %s", e.Bucket, e.Err)
}

// Unwrap returns the underlying cause, allowing 'errors.Is' to match e.g. 'ErrUnauthorized'.
func (e *BucketCreationError) Unwrap() error {
	return e.Err
}

// IsBucketCreationError returns a boolean indicating whether the given error is a 'BucketCreationError'.
func IsBucketCreationError(err error) bool {
	var bucketCreationError *BucketCreationError
	return errors.As(err, &bucketCreationError)
}
