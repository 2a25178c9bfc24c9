// Package retry exposes a 'Retryer' allowing conditionally retrying functions, with back-off between attempts.
package retry

import (
	"context"
	"time"
)

// maxMultiplier caps the back-off multiplier, beyond this point the back-off is constant.
const maxMultiplier = 50

// RetryableFunc represents a function which may be retried.
type RetryableFunc[T any] func(ctx *Context) (T, error)

// Retryer runs a function until it succeeds, it's not retryable or the max number of attempts is reached.
type Retryer[T any] struct {
	options RetryerOptions
}

// NewRetryer returns a new retryer with the given options.
func NewRetryer[T any](options RetryerOptions) Retryer[T] {
	options.defaults()

	return Retryer[T]{options: options}
}

// DoWithContext runs the given function until it's successful, the context is checked between attempts and cancels
// any back-off.
func (r Retryer[T]) DoWithContext(ctx context.Context, fn RetryableFunc[T]) (T, error) {
	wrapped := NewContext(ctx)

	for {
		payload, err := fn(wrapped)
		if err == nil || !r.shouldRetry(wrapped, err) {
			return payload, err
		}

		if wrapped.attempt >= r.options.MaxAttempts {
			return payload, &RetriesExhaustedError{attempts: wrapped.attempt, err: err}
		}

		if r.options.Log != nil {
			r.options.Log(wrapped, err)
		}

		if err := r.sleep(wrapped); err != nil {
			return *new(T), err
		}

		wrapped.attempt++
	}
}

func (r Retryer[T]) shouldRetry(ctx *Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	if r.options.ShouldRetry == nil {
		return true
	}

	return r.options.ShouldRetry(ctx, err)
}

// sleep until the next attempt, or the context is cancelled.
func (r Retryer[T]) sleep(ctx *Context) error {
	timer := time.NewTimer(r.Duration(ctx.attempt))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return &RetriesAbortedError{attempts: ctx.attempt, err: ctx.Err()}
	}
}

// Duration returns the back-off following the given attempt, bounded by the min/max delay.
func (r Retryer[T]) Duration(attempt int) time.Duration {
	attempt = min(max(attempt, 1), maxMultiplier)

	var n uint64

	switch r.options.Algorithm {
	case AlgorithmLinear:
		n = uint64(attempt)
	case AlgorithmExponential:
		n = 1 << attempt
	case AlgorithmFibonacci:
		n = fibN(attempt)
	}

	// Overflow, or beyond the max anyway
	if n > uint64(r.options.MaxDelay/r.options.MinDelay) {
		return r.options.MaxDelay
	}

	return max(r.options.MinDelay, time.Duration(n)*r.options.MinDelay)
}

// fibN returns the nth fibonacci number.
func fibN(n int) uint64 {
	var a, b uint64 = 0, 1

	for range n {
		a, b = b, a+b
	}

	return a
}
