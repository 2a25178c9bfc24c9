package retry

import "time"

// Algorithm determines how the back-off between attempts grows.
type Algorithm int

const (
	// AlgorithmFibonacci backs off using the fibonacci sequence e.g. 50ms, 50ms, 100ms, 150ms ...
	AlgorithmFibonacci Algorithm = iota

	// AlgorithmExponential backs off exponentially e.g. 100ms, 200ms, 400ms ...
	AlgorithmExponential

	// AlgorithmLinear backs off linearly e.g. 50ms, 100ms, 150ms ...
	AlgorithmLinear
)

// ShouldRetryFunc decides whether a failed attempt should be retried, when not supplied any error is retried.
type ShouldRetryFunc func(ctx *Context, err error) bool

// LogFunc is run after each failed attempt which is about to be retried.
type LogFunc func(ctx *Context, err error)

// RetryerOptions encapsulates the options available when creating a retryer.
type RetryerOptions struct {
	// Algorithm is the algorithm used to calculate back-off.
	Algorithm Algorithm

	// MaxAttempts is the maximum number of times the function is run, defaults to three.
	MaxAttempts int

	// MinDelay is the minimum back-off, defaults to 50ms.
	MinDelay time.Duration

	// MaxDelay is the maximum back-off, defaults to 2.5s.
	MaxDelay time.Duration

	ShouldRetry ShouldRetryFunc
	Log         LogFunc
}

// defaults fills any missing attributes to a sane default.
func (r *RetryerOptions) defaults() {
	if r.MaxAttempts <= 0 {
		r.MaxAttempts = 3
	}

	if r.MinDelay == 0 {
		r.MinDelay = 50 * time.Millisecond
	}

	if r.MaxDelay == 0 {
		r.MaxDelay = 2*time.Second + 500*time.Millisecond
	}

	r.MaxDelay = max(r.MinDelay, r.MaxDelay)
}
