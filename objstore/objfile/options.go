package objfile

import (
	"context"
	"log/slog"

	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/types/ptr"
	"github.com/couchbase/tools-objfile/types/timeprovider"
)

// OpenOptions encapsulates the options available when opening a file.
type OpenOptions struct {
	// Context is the 'context.Context' used for every request made on behalf of the file, it can be used to cancel
	// requests or apply a timeout to them.
	Context context.Context

	// Client is the client used to fetch/store the object.
	//
	// NOTE: Required
	Client objcli.Client

	// URL is the location of the object e.g. 'objectstore://bucket/key' or 'https://bucket.host/key'.
	//
	// NOTE: Takes precedence over 'Bucket' and 'Key' when provided.
	URL string

	// Bucket is the bucket containing the object, used when no 'URL' is provided.
	Bucket string

	// Key is the key of the object, used when no 'URL' is provided.
	Key string

	// CreateBucket creates the bucket when it doesn't already exist.
	CreateBucket bool

	// Private stores the object so that it's only accessible by its owner, otherwise it's publicly readable.
	Private bool

	// ContentType is the MIME type the object is stored with, guessed from the key when empty.
	ContentType string

	// ExpirationDays is the number of days after which the stored object should no longer be cached, ignored unless
	// positive.
	ExpirationDays int

	// TimeProvider is used to calculate the expiration time, defaults to the real clock.
	TimeProvider timeprovider.TimeProvider

	// Logger is the logger used by the file, defaults to 'slog.Default()'.
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *OpenOptions) defaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}

	if o.TimeProvider == nil {
		o.TimeProvider = timeprovider.CurrentTimeProvider{}
	}

	ptr.SetIfNil(&o.Logger, slog.Default())
}
