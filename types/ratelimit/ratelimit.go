// Package ratelimit exposes rate limited readers used to throttle object transfers.
package ratelimit

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// throttle charges the limiter one token per byte read.
type throttle struct {
	ctx     context.Context
	limiter *rate.Limiter
}

// after blocks until the limiter allows the n bytes just read, an error waiting takes precedence over the read error.
func (t throttle) after(n int, err error) (int, error) {
	if n <= 0 {
		return n, err
	}

	if wErr := waitChunked(t.ctx, t.limiter, n); wErr != nil {
		return n, wErr
	}

	return n, err
}

// RateLimitedReadCloser throttles reads of a downloaded object body.
type RateLimitedReadCloser struct {
	throttle
	r io.ReadCloser
}

// NewRateLimitedReadCloser creates a new RateLimitedReadCloser which respects "limiter" in terms of the number of bytes
// read.
func NewRateLimitedReadCloser(ctx context.Context, r io.ReadCloser, limiter *rate.Limiter) *RateLimitedReadCloser {
	return &RateLimitedReadCloser{throttle: throttle{ctx: ctx, limiter: limiter}, r: r}
}

func (r *RateLimitedReadCloser) Read(p []byte) (int, error) {
	return r.after(r.r.Read(p))
}

func (r *RateLimitedReadCloser) Close() error {
	return r.r.Close()
}

// RateLimitedReadSeeker throttles reads of an object body being uploaded; seeking is passed through so that SDKs may
// still calculate checksums/lengths.
type RateLimitedReadSeeker struct {
	throttle
	r io.ReadSeeker
}

// NewRateLimitedReadSeeker creates a RateLimitedReadSeeker which respects "limiter" in terms of the number of bytes
// read.
func NewRateLimitedReadSeeker(ctx context.Context, r io.ReadSeeker, limiter *rate.Limiter) *RateLimitedReadSeeker {
	return &RateLimitedReadSeeker{throttle: throttle{ctx: ctx, limiter: limiter}, r: r}
}

func (r *RateLimitedReadSeeker) Read(p []byte) (int, error) {
	return r.after(r.r.Read(p))
}

func (r *RateLimitedReadSeeker) Seek(offset int64, whence int) (int64, error) {
	return r.r.Seek(offset, whence)
}

// waitChunked waits for n tokens in chunks of the limiter's burst size, rate.Limiter won't hand out more than its burst
// in a single call.
func waitChunked(ctx context.Context, limiter *rate.Limiter, n int) error {
	for n > 0 {
		chunk := min(n, limiter.Burst())
		if err := limiter.WaitN(ctx, chunk); err != nil {
			return fmt.Errorf("could not wait for limiter: %w", err)
		}

		n -= chunk
	}

	return nil
}

var (
	_ io.ReadCloser = (*RateLimitedReadCloser)(nil)
	_ io.ReadSeeker = (*RateLimitedReadSeeker)(nil)
)
