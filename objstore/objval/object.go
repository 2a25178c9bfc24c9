package objval

import (
	"io"
	"time"
)

// ObjectAttrs represents the attributes usually attached to an object in the cloud.
type ObjectAttrs struct {
	// Key is the identifier for the object; a unique path.
	Key string

	// ETag is the HTTP entity tag for the object, each cloud provider uses this differently.
	ETag *string

	// Size is the size or content length of the object in bytes.
	//
	// NOTE: May be <nil> where the cloud provider returns a chunked response.
	Size *int64

	// LastModified is the time the object was last updated (or created).
	LastModified *time.Time
}

// Object represents an object stored in the cloud, simply the attributes and it's body.
type Object struct {
	ObjectAttrs

	// This body will generally be a HTTP response body; it should be read once, and closed to avoid resource leaks.
	Body io.ReadCloser
}

// TestBuckets represents a number of buckets, and is only used by the 'TestClient' to store state in memory.
type TestBuckets map[string]TestBucket

// TestBucket represents a bucket and is only used by the 'TestClient' to store objects in memory.
type TestBucket map[string]*TestObject

// TestObject represents an object and is only used by the 'TestClient'.
type TestObject struct {
	ObjectAttrs
	Metadata Metadata
	Body     []byte
}
