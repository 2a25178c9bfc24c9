package retry

import (
	"errors"
	"fmt"
)

// RetriesExhaustedError is returned after exhausting the max number of attempts, unwrapping the error will return the
// error from the last failure.
type RetriesExhaustedError struct {
	attempts int
	err      error
}

func (r *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("exhausted retry count after %d attempts: %s", r.attempts, r.err)
}

func (r *RetriesExhaustedError) Unwrap() error {
	return r.err
}

// IsRetriesExhausted returns a boolean indicating whether the given error is a 'RetriesExhaustedError'.
func IsRetriesExhausted(err error) bool {
	var retriesExhausted *RetriesExhaustedError
	return errors.As(err, &retriesExhausted)
}

// RetriesAbortedError is returned when the context is cancelled whilst waiting to retry, unwrapping the error will
// return the context error.
type RetriesAbortedError struct {
	attempts int
	err      error
}

func (r *RetriesAbortedError) Error() string {
	return fmt.Sprintf("retries aborted after %d attempts: %s", r.attempts, r.err)
}

func (r *RetriesAbortedError) Unwrap() error {
	return r.err
}

// IsRetriesAborted returns a boolean indicating whether the given error is a 'RetriesAbortedError'.
func IsRetriesAborted(err error) bool {
	var retriesAborted *RetriesAbortedError
	return errors.As(err, &retriesAborted)
}
