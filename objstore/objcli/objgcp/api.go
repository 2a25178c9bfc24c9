package objgcp

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
)

//go:generate mockery --all --case underscore --inpackage

// serviceAPI is a top level interface which allows interactions with Google cloud storage.
type serviceAPI interface {
	Bucket(name string) bucketAPI
	Close() error
}

// serviceClient implements the 'serviceAPI' interface and encapsulates the Google SDK into a unit testable interface.
type serviceClient struct {
	c *storage.Client
}

func (s serviceClient) Bucket(name string) bucketAPI {
	return bucketHandle{h: s.c.Bucket(name)}
}

func (s serviceClient) Close() error {
	return s.c.Close()
}

// bucketAPI is a bucket level interface which allows interactions with a Google Storage bucket.
type bucketAPI interface {
	Attrs(ctx context.Context) (*storage.BucketAttrs, error)
	Create(ctx context.Context, projectID string, attrs *storage.BucketAttrs) error
	Object(key string) objectAPI
}

// bucketHandle implements the 'bucketAPI' interface and encapsulates the Google Storage SDK into a unit testable
// interface.
type bucketHandle struct {
	h *storage.BucketHandle
}

func (b bucketHandle) Attrs(ctx context.Context) (*storage.BucketAttrs, error) {
	return b.h.Attrs(ctx)
}

func (b bucketHandle) Create(ctx context.Context, projectID string, attrs *storage.BucketAttrs) error {
	return b.h.Create(ctx, projectID, attrs)
}

func (b bucketHandle) Object(key string) objectAPI {
	return objectHandle{h: b.h.Object(key)}
}

// objectAPI is an object level API which allows interactions with an object stored in a Google cloud bucket.
type objectAPI interface {
	NewRangeReader(ctx context.Context, offset, length int64) (readerAPI, error)
	NewWriter(ctx context.Context) writerAPI
}

// objectHandle implements the 'objectAPI' interface and encapsulates the Google Storage SDK into a unit testable
// interface.
type objectHandle struct {
	h *storage.ObjectHandle
}

func (o objectHandle) NewRangeReader(ctx context.Context, offset, length int64) (readerAPI, error) {
	r, err := o.h.NewRangeReader(ctx, offset, length)
	if err != nil {
		return nil, err
	}

	return reader{r: r}, nil
}

func (o objectHandle) NewWriter(ctx context.Context) writerAPI {
	writer := writer{w: o.h.NewWriter(ctx)}

	// Objects are buffered in memory in their entirety, upload them in a single request.
	//
	// NOTE: Disabling chunking also disables retries within the SDK, failures are surfaced to the caller.
	writer.w.ChunkSize = 0

	return writer
}

// readerAPI is a reader API which is used to stream object data from Google Storage.
type readerAPI interface {
	io.ReadCloser
	Attrs() storage.ReaderObjectAttrs
}

// reader implements the 'readerAPI' and encapsulates the Google Storage SDK into a unit testable interface.
type reader struct {
	r *storage.Reader
}

func (r reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func (r reader) Close() error {
	return r.r.Close()
}

func (r reader) Attrs() storage.ReaderObjectAttrs {
	return r.r.Attrs
}

// writerAPI is a checksum aware writer API which is used to upload data to Google Storage.
type writerAPI interface {
	io.WriteCloser
	SendMD5(md5 []byte)
	SendCRC(crc uint32)

	// ObjectAttrs returns the attributes which will be applied to the object being written, they must be modified
	// before the first call to 'Write'.
	ObjectAttrs() *storage.ObjectAttrs
}

// writer implements the 'writerAPI' and encapsulates the Google Storage SDK into a unit testable interface.
type writer struct {
	w *storage.Writer
}

func (w writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

func (w writer) Close() error {
	return w.w.Close()
}

func (w writer) SendMD5(md5 []byte) {
	w.w.ObjectAttrs.MD5 = md5
}

func (w writer) SendCRC(crc uint32) {
	w.w.SendCRC32C = true
	w.w.ObjectAttrs.CRC32C = crc
}

func (w writer) ObjectAttrs() *storage.ObjectAttrs {
	return &w.w.ObjectAttrs
}
