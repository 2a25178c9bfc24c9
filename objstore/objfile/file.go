package objfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/couchbase/tools-objfile/core/log"
	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/objstore/objutil"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/types/timeprovider"
)

// File is a buffered, seekable view of a single object.
//
// The object is fetched by the first operation which needs its contents, and only stored again once modified; see
// 'Flush' and 'Close'.
type File struct {
	ctx    context.Context
	client objcli.Client
	bucket string
	key    string
	logger *slog.Logger

	contentType    string
	private        bool
	expirationDays int
	clock          timeprovider.TimeProvider

	state  state
	buffer []byte
	cursor int64
}

// Open returns a file for the object at the given location. No request is made for the object itself until it's
// required, however, the bucket may be created when requested.
func Open(opts OpenOptions) (*File, error) {
	opts.defaults()

	if opts.Client == nil {
		return nil, &UsageError{Op: "open", Err: ErrNoClient}
	}

	bucket, key, err := resolveLocation(opts)
	if err != nil {
		return nil, err
	}

	file := &File{
		ctx:            opts.Context,
		client:         opts.Client,
		bucket:         bucket,
		key:            key,
		logger:         opts.Logger,
		contentType:    opts.ContentType,
		private:        opts.Private,
		expirationDays: opts.ExpirationDays,
		clock:          opts.TimeProvider,
		state:          stateUnfetched,
	}

	if !opts.CreateBucket {
		return file, nil
	}

	err = file.ensureBucket()
	if err != nil {
		return nil, err
	}

	return file, nil
}

// resolveLocation returns the bucket/key addressed by the given options.
func resolveLocation(opts OpenOptions) (string, string, error) {
	if opts.URL == "" {
		return validateLocation(opts.Bucket, strings.TrimLeft(opts.Key, "/"))
	}

	parsed, err := objutil.ParseObjectURL(opts.URL)
	if err != nil {
		return "", "", &UsageError{Op: "open", Err: fmt.Errorf("%w: %w", ErrInvalidLocation, err)}
	}

	if parsed.Provider != objval.ProviderNone && parsed.Provider != opts.Client.Provider() {
		return "", "", &UsageError{
			Op:  "open",
			Err: fmt.Errorf("%w: got '%s', expected '%s'", ErrProviderMismatch, parsed.Provider, opts.Client.Provider()),
		}
	}

	return validateLocation(parsed.Bucket, parsed.Key)
}

func validateLocation(bucket, key string) (string, string, error) {
	if bucket == "" || key == "" {
		return "", "", &UsageError{Op: "open", Err: ErrInvalidLocation}
	}

	return bucket, key, nil
}

// ensureBucket creates the bucket when it doesn't already exist.
func (f *File) ensureBucket() error {
	exists, err := f.client.BucketExists(f.ctx, objcli.BucketExistsOptions{Bucket: f.bucket})
	if err != nil {
		return &objerr.BucketCreationError{Bucket: f.bucket, Err: err}
	}

	if exists {
		return nil
	}

	err = f.client.CreateBucket(f.ctx, objcli.CreateBucketOptions{Bucket: f.bucket})
	if err != nil {
		return &objerr.BucketCreationError{Bucket: f.bucket, Err: err}
	}

	f.logger.Info("(Objfile) Created bucket", log.UserData("bucket", f.bucket))

	return nil
}

// ensurePopulated fetches the object into the buffer if it hasn't been already. A missing object is treated as being
// empty; any other failure leaves the file unfetched so that the fetch is retried by the next read.
func (f *File) ensurePopulated() error {
	if f.state != stateUnfetched {
		return nil
	}

	object, err := f.client.GetObject(f.ctx, objcli.GetObjectOptions{Bucket: f.bucket, Key: f.key})
	if objerr.IsNotFoundError(err) {
		f.logger.Debug("(Objfile) Object not found, treating as empty", f.attrs()...)

		f.buffer, f.state = nil, stateClean

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to fetch object: %w", err)
	}

	defer object.Body.Close()

	data, err := io.ReadAll(object.Body)
	if err != nil {
		return fmt.Errorf("failed to read object body: %w", err)
	}

	f.buffer, f.state = data, stateClean
	f.cursor = min(f.cursor, int64(len(f.buffer)))

	f.logger.Debug("(Objfile) Fetched object", append(f.attrs(), slog.Int("bytes", len(data)))...)

	return nil
}

// checkOpen returns a usage error for the given operation if the file has been closed.
func (f *File) checkOpen(op string) error {
	if f.state == stateClosed {
		return &UsageError{Op: op, Err: ErrClosed}
	}

	return nil
}

// markDirty records that the buffer has been modified, a write/truncate before the object has been fetched makes the
// buffer authoritative and the object will never be fetched.
func (f *File) markDirty() {
	f.state = stateDirty
}

func (f *File) attrs() []any {
	return []any{log.UserData("bucket", f.bucket), log.UserData("key", f.key)}
}

// Flush stores the contents of the buffer if it has been modified since it was last stored, the position of the file is
// unchanged. When storing fails the file remains modified, and 'Flush' may be retried.
func (f *File) Flush() error {
	if err := f.checkOpen("flush"); err != nil {
		return err
	}

	if f.state != stateDirty {
		return nil
	}

	err := f.client.PutObject(f.ctx, objcli.PutObjectOptions{
		Bucket:   f.bucket,
		Key:      f.key,
		Body:     bytes.NewReader(f.buffer),
		Metadata: f.metadata(),
	})
	if err != nil {
		return fmt.Errorf("failed to store object: %w", err)
	}

	f.state = stateClean

	f.logger.Debug("(Objfile) Stored object", append(f.attrs(), slog.Int("bytes", len(f.buffer)))...)

	return nil
}

// metadata returns the metadata applied when storing the object, the expiration time is relative to the time of the
// store rather than when the file was opened.
func (f *File) metadata() objval.Metadata {
	return objutil.NewMetadata(objutil.MetadataOptions{
		Key:            f.key,
		ContentType:    f.contentType,
		Private:        f.private,
		ExpirationDays: f.expirationDays,
		Now:            f.clock.Now(),
	})
}

// Close flushes any modifications and releases the buffer. When flushing fails the error is returned and the file
// remains open, allowing the caller to retry.
//
// NOTE: Closing a file more than once is a usage error.
func (f *File) Close() error {
	if err := f.checkOpen("close"); err != nil {
		return err
	}

	if err := f.Flush(); err != nil {
		return err
	}

	f.buffer, f.cursor, f.state = nil, 0, stateClosed

	f.logger.Debug("(Objfile) Closed file", f.attrs()...)

	return nil
}

// Closed returns a boolean indicating whether the file has been closed.
func (f *File) Closed() bool {
	return f.state == stateClosed
}

// Name returns the canonical location of the file e.g. 's3://bucket/key'.
func (f *File) Name() string {
	return fmt.Sprintf("%s%s/%s", f.client.Provider().ToScheme(), f.bucket, f.key)
}

// Bucket returns the name of the bucket containing the object.
func (f *File) Bucket() string {
	return f.bucket
}

// Key returns the key of the object.
func (f *File) Key() string {
	return f.key
}
