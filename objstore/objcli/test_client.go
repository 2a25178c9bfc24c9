package objcli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/objstore/objval"
	testutil "github.com/couchbase/tools-objfile/testing/util"
	"github.com/couchbase/tools-objfile/types/ptr"
)

// TestClient implementation of the 'Client' interface which stores state in memory, and can be used to avoid having to
// manually mock a client during unit testing.
//
// The number of calls made to each operation is recorded, and failures may be injected using 'FailNext'.
type TestClient struct {
	t        *testing.T
	lock     sync.RWMutex
	provider objval.Provider
	calls    map[Op]int
	failures map[Op][]error

	// Buckets is the in memory state maintained by the client. Internally, access is guarded by a mutex, however, it's
	// not safe/recommended to access this attribute whilst a test is running; it should only be used to inspect state
	// (to perform assertions) once testing is complete.
	Buckets objval.TestBuckets
}

var _ Client = (*TestClient)(nil)

// NewTestClient returns a new test client, which has no buckets/objects.
func NewTestClient(t *testing.T, provider objval.Provider) *TestClient {
	return &TestClient{
		t:        t,
		provider: provider,
		calls:    make(map[Op]int),
		failures: make(map[Op][]error),
		Buckets:  make(objval.TestBuckets),
	}
}

// Calls returns the number of times the given operation has been called, including calls which failed.
func (t *TestClient) Calls(op Op) int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.calls[op]
}

// FailNext causes the next call to the given operation to return the provided error, multiple calls queue errors
// which are returned in order.
func (t *TestClient) FailNext(op Op, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.failures[op] = append(t.failures[op], err)
}

func (t *TestClient) Provider() objval.Provider {
	return t.provider
}

func (t *TestClient) BucketExists(_ context.Context, opts BucketExistsOptions) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if err := t.recordLocked(OpBucketExists); err != nil {
		return false, err
	}

	_, ok := t.Buckets[opts.Bucket]

	return ok, nil
}

func (t *TestClient) CreateBucket(_ context.Context, opts CreateBucketOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if err := t.recordLocked(OpCreateBucket); err != nil {
		return err
	}

	_ = t.getBucketLocked(opts.Bucket)

	return nil
}

func (t *TestClient) GetObject(_ context.Context, opts GetObjectOptions) (*objval.Object, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if err := t.recordLocked(OpGetObject); err != nil {
		return nil, err
	}

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	// Copy the body so that the caller can't observe later writes to the same key
	body := bytes.Clone(object.Body)

	return &objval.Object{
		ObjectAttrs: object.ObjectAttrs,
		Body:        io.NopCloser(bytes.NewReader(body)),
	}, nil
}

func (t *TestClient) PutObject(_ context.Context, opts PutObjectOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if err := t.recordLocked(OpPutObject); err != nil {
		return err
	}

	t.putObjectLocked(opts.Bucket, opts.Key, opts.Body, opts.Metadata)

	return nil
}

func (t *TestClient) Close() error {
	return nil
}

// recordLocked increments the call counter for the given operation, returning any injected failure.
func (t *TestClient) recordLocked(op Op) error {
	t.calls[op]++

	queued := t.failures[op]
	if len(queued) == 0 {
		return nil
	}

	t.failures[op] = queued[1:]

	return queued[0]
}

func (t *TestClient) getBucketLocked(bucket string) objval.TestBucket {
	_, ok := t.Buckets[bucket]
	if !ok {
		t.Buckets[bucket] = make(objval.TestBucket)
	}

	return t.Buckets[bucket]
}

func (t *TestClient) getObjectRLocked(bucket, key string) (*objval.TestObject, error) {
	b, ok := t.Buckets[bucket]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "bucket", Name: bucket}
	}

	o, ok := b[key]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "key", Name: key}
	}

	return o, nil
}

// NOTE: Buckets are automatically created by the test client when an object is stored in them.
func (t *TestClient) putObjectLocked(bucket, key string, body io.ReadSeeker, metadata objval.Metadata) {
	var (
		now  = time.Now()
		data = testutil.ReadAll(t.t, body)
	)

	attrs := objval.ObjectAttrs{
		Key:          key,
		ETag:         ptr.To(strings.ReplaceAll(uuid.NewString(), "-", "")),
		Size:         ptr.To(int64(len(data))),
		LastModified: &now,
	}

	t.getBucketLocked(bucket)[key] = &objval.TestObject{
		ObjectAttrs: attrs,
		Metadata:    metadata,
		Body:        data,
	}
}
