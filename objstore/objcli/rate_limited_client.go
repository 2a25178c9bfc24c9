package objcli

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/types/ratelimit"
)

// RateLimitedClient implements objcli.Client interface mostly by deferring to the underlying Client, but where the
// methods which involve uploading/downloading objects, the rate limiter is used to control the rate of data transfer.
//
// The rate-limited methods are:
//
// - GetObject
// - PutObject
type RateLimitedClient struct {
	c  Client
	rl *rate.Limiter
}

var _ Client = (*RateLimitedClient)(nil)

// NewRateLimitedClient returns a RateLimitedClient.
func NewRateLimitedClient(c Client, rl *rate.Limiter) *RateLimitedClient {
	return &RateLimitedClient{c: c, rl: rl}
}

func (r *RateLimitedClient) Provider() objval.Provider {
	return r.c.Provider()
}

func (r *RateLimitedClient) BucketExists(ctx context.Context, opts BucketExistsOptions) (bool, error) {
	return r.c.BucketExists(ctx, opts)
}

func (r *RateLimitedClient) CreateBucket(ctx context.Context, opts CreateBucketOptions) error {
	return r.c.CreateBucket(ctx, opts)
}

func (r *RateLimitedClient) GetObject(ctx context.Context, opts GetObjectOptions) (*objval.Object, error) {
	obj, err := r.c.GetObject(ctx, opts)
	if err != nil {
		return nil, err
	}

	obj.Body = ratelimit.NewRateLimitedReadCloser(ctx, obj.Body, r.rl)

	return obj, nil
}

func (r *RateLimitedClient) PutObject(ctx context.Context, opts PutObjectOptions) error {
	opts.Body = ratelimit.NewRateLimitedReadSeeker(ctx, opts.Body, r.rl)
	return r.c.PutObject(ctx, opts)
}

func (r *RateLimitedClient) Close() error {
	return r.c.Close()
}
