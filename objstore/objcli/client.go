// Package objcli exposes a unified 'Client' interface for the object store operations required to back a file.
package objcli

import (
	"context"
	"io"

	"github.com/couchbase/tools-objfile/objstore/objval"
)

//go:generate mockery --name Client --case underscore --inpackage

// BucketExistsOptions encapsulates the options available when using the 'BucketExists' function.
type BucketExistsOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string
}

// CreateBucketOptions encapsulates the options available when using the 'CreateBucket' function.
type CreateBucketOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string
}

// GetObjectOptions encapsulates the options available when using the 'GetObject' function.
type GetObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object/blob being operated on.
	Key string
}

// PutObjectOptions encapsulates the options available when using the 'PutObject' function.
type PutObjectOptions struct {
	// Bucket is the bucket being operated on.
	Bucket string

	// Key is the key (path) of the object/blob being operated on.
	Key string

	// Body is the data that will be uploaded.
	//
	// NOTE: Required to be a 'ReadSeeker' to support checksum calculation/validation.
	Body io.ReadSeeker

	// Metadata is applied to the stored object e.g. content type, ACL and expiration.
	Metadata objval.Metadata
}

// Client is a unified interface for accessing/managing objects stored in the cloud.
type Client interface {
	// Provider returns the cloud provider this client is interfacing with.
	//
	// NOTE: This may be used to change high level behavior which may be cloud provider specific.
	Provider() objval.Provider

	// BucketExists returns a boolean indicating whether the given bucket exists.
	//
	// NOTE: Only a "not found" response results in 'false', any other failure is returned as an error.
	BucketExists(ctx context.Context, opts BucketExistsOptions) (bool, error)

	// CreateBucket creates the given bucket.
	//
	// NOTE: Creation is idempotent, a bucket which already exists (e.g. created by a racing caller) is not an error.
	CreateBucket(ctx context.Context, opts CreateBucketOptions) error

	// GetObject retrieves an object from the cloud, an '*objerr.NotFoundError' is returned if either the bucket or
	// the object don't exist.
	//
	// NOTE: The returned objects body must be closed to avoid resource leaks.
	GetObject(ctx context.Context, opts GetObjectOptions) (*objval.Object, error)

	// PutObject creates an object in the cloud with the given key/options, replacing any existing object.
	PutObject(ctx context.Context, opts PutObjectOptions) error

	// Close the underlying client/SDK where applicable; use of a client after it has been closed is invalid.
	Close() error
}
