package objcli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/retry"
)

// RetryingClient is a client which retries operations that fail with transient errors, errors such as missing
// objects, authentication failures or cancellation are returned immediately.
type RetryingClient struct {
	c       Client
	options retry.RetryerOptions
	logger  *slog.Logger
}

var _ Client = (*RetryingClient)(nil)

// NewRetryingClient returns a client which retries the operations of the given client using the given options, any
// 'ShouldRetry' function is run in addition to the default checks.
func NewRetryingClient(c Client, options retry.RetryerOptions, logger *slog.Logger) *RetryingClient {
	if logger == nil {
		logger = slog.Default()
	}

	shouldRetry := options.ShouldRetry

	options.ShouldRetry = func(ctx *retry.Context, err error) bool {
		return isTransient(err) && (shouldRetry == nil || shouldRetry(ctx, err))
	}

	if options.Log == nil {
		options.Log = func(ctx *retry.Context, err error) {
			logger.Warn("(Objcli) Operation failed, retrying", "attempt", ctx.Attempt(), "err", err)
		}
	}

	return &RetryingClient{c: c, options: options, logger: logger}
}

// isTransient returns a boolean indicating whether the given error may succeed if retried.
func isTransient(err error) bool {
	return !objerr.IsNotFoundError(err) &&
		!errors.Is(err, objerr.ErrUnauthenticated) &&
		!errors.Is(err, objerr.ErrUnauthorized) &&
		!errors.Is(err, objerr.ErrEndpointResolutionFailed) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func (r *RetryingClient) Provider() objval.Provider {
	return r.c.Provider()
}

func (r *RetryingClient) BucketExists(ctx context.Context, opts BucketExistsOptions) (bool, error) {
	return retry.NewRetryer[bool](r.options).DoWithContext(ctx, func(ctx *retry.Context) (bool, error) {
		return r.c.BucketExists(ctx, opts)
	})
}

func (r *RetryingClient) CreateBucket(ctx context.Context, opts CreateBucketOptions) error {
	_, err := retry.NewRetryer[struct{}](r.options).DoWithContext(ctx, func(ctx *retry.Context) (struct{}, error) {
		return struct{}{}, r.c.CreateBucket(ctx, opts)
	})

	return err
}

func (r *RetryingClient) GetObject(ctx context.Context, opts GetObjectOptions) (*objval.Object, error) {
	return retry.NewRetryer[*objval.Object](r.options).DoWithContext(ctx,
		func(ctx *retry.Context) (*objval.Object, error) {
			return r.c.GetObject(ctx, opts)
		},
	)
}

// PutObject stores the object, the body is rewound to its initial position before each attempt.
func (r *RetryingClient) PutObject(ctx context.Context, opts PutObjectOptions) error {
	start, err := opts.Body.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	_, err = retry.NewRetryer[struct{}](r.options).DoWithContext(ctx, func(ctx *retry.Context) (struct{}, error) {
		if _, err := opts.Body.Seek(start, io.SeekStart); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, r.c.PutObject(ctx, opts)
	})

	return err
}

func (r *RetryingClient) Close() error {
	return r.c.Close()
}
