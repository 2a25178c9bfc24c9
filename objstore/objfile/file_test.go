package objfile

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/types/ptr"
	"github.com/couchbase/tools-objfile/types/timeprovider"
)

const testURL = "objectstore://bucket/key.txt"

func newTestFile(t *testing.T, client objcli.Client) *File {
	file, err := Open(OpenOptions{Client: client, URL: testURL})
	require.NoError(t, err)

	return file
}

func TestOpen(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	file := newTestFile(t, client)
	require.Equal(t, "bucket", file.Bucket())
	require.Equal(t, "key.txt", file.Key())
	require.Equal(t, stateUnfetched, file.state)
	require.Zero(t, file.Tell())
	require.False(t, file.Closed())

	require.Zero(t, client.Calls(objcli.OpGetObject))
	require.Zero(t, client.Calls(objcli.OpBucketExists))
}

func TestOpenLocation(t *testing.T) {
	type test struct {
		name           string
		opts           OpenOptions
		expectedBucket string
		expectedKey    string
		expectedError  error
	}

	tests := []*test{
		{
			name:           "VirtualHostedURL",
			opts:           OpenOptions{URL: "https://bucket.s3.amazonaws.com/dir/key"},
			expectedBucket: "bucket",
			expectedKey:    "dir/key",
		},
		{
			name:           "PathStyleServiceEndpoint",
			opts:           OpenOptions{URL: "https://s3.amazonaws.com/bucket/dir/key"},
			expectedBucket: "bucket",
			expectedKey:    "dir/key",
		},
		{
			name:           "MatchingProvider",
			opts:           OpenOptions{URL: "s3://bucket/key"},
			expectedBucket: "bucket",
			expectedKey:    "key",
		},
		{
			name:           "BucketAndKey",
			opts:           OpenOptions{Bucket: "bucket", Key: "//dir/key"},
			expectedBucket: "bucket",
			expectedKey:    "dir/key",
		},
		{
			name:          "ProviderMismatch",
			opts:          OpenOptions{URL: "gs://bucket/key"},
			expectedError: ErrProviderMismatch,
		},
		{
			name:          "NoKey",
			opts:          OpenOptions{URL: "objectstore://bucket"},
			expectedError: ErrInvalidLocation,
		},
		{
			name:          "NoBucket",
			opts:          OpenOptions{Key: "key"},
			expectedError: ErrInvalidLocation,
		},
		{
			name:          "UnsupportedScheme",
			opts:          OpenOptions{URL: "ftp://bucket/key"},
			expectedError: ErrInvalidLocation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.opts.Client = objcli.NewTestClient(t, objval.ProviderAWS)

			file, err := Open(test.opts)
			if test.expectedError != nil {
				require.ErrorIs(t, err, test.expectedError)
				require.True(t, IsUsageError(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expectedBucket, file.Bucket())
			require.Equal(t, test.expectedKey, file.Key())
		})
	}
}

func TestOpenNoClient(t *testing.T) {
	_, err := Open(OpenOptions{URL: testURL})
	require.ErrorIs(t, err, ErrNoClient)
}

func TestOpenCreateBucket(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	_, err := Open(OpenOptions{Client: client, URL: testURL, CreateBucket: true})
	require.NoError(t, err)
	require.Contains(t, client.Buckets, "bucket")
	require.Equal(t, 1, client.Calls(objcli.OpCreateBucket))

	_, err = Open(OpenOptions{Client: client, URL: testURL, CreateBucket: true})
	require.NoError(t, err)
	require.Equal(t, 2, client.Calls(objcli.OpBucketExists))
	require.Equal(t, 1, client.Calls(objcli.OpCreateBucket))
}

func TestOpenCreateBucketFailure(t *testing.T) {
	type test struct {
		name string
		op   objcli.Op
	}

	tests := []*test{
		{name: "BucketExists", op: objcli.OpBucketExists},
		{name: "CreateBucket", op: objcli.OpCreateBucket},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := objcli.NewTestClient(t, objval.ProviderAWS)
			client.FailNext(test.op, objerr.ErrUnauthorized)

			_, err := Open(OpenOptions{Client: client, URL: testURL, CreateBucket: true})
			require.True(t, objerr.IsBucketCreationError(err))
			require.ErrorIs(t, err, objerr.ErrUnauthorized)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	type test struct {
		name string
		data []byte
	}

	tests := []*test{
		{name: "AllBytes", data: all},
		{name: "Large", data: bytes.Repeat(all, 16*1024)},
		{name: "Empty", data: []byte{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := objcli.NewTestClient(t, objval.ProviderAWS)

			file := newTestFile(t, client)

			_, err := file.Write(test.data)
			require.NoError(t, err)
			require.NoError(t, file.Close())

			file = newTestFile(t, client)

			data, err := file.ReadAll()
			require.NoError(t, err)
			require.Equal(t, test.data, data)
			require.NoError(t, file.Close())
		})
	}
}

func TestLazyReadOnce(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	objcli.TestUploadRAW(t, client, "bucket", "key.txt", []byte("hello world"))

	file := newTestFile(t, client)

	first, err := file.ReadN(5)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), first)

	second, err := file.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []byte(" world"), second)

	require.Equal(t, 1, client.Calls(objcli.OpGetObject))
}

func TestWriteSuppression(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	objcli.TestUploadRAW(t, client, "bucket", "key.txt", []byte("hello world"))

	file := newTestFile(t, client)

	_, err := file.ReadAll()
	require.NoError(t, err)
	require.NoError(t, file.Flush())
	require.NoError(t, file.Close())

	// The upload above is the only put
	require.Equal(t, 1, client.Calls(objcli.OpPutObject))
}

func TestCloseWithoutAccess(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	require.NoError(t, newTestFile(t, client).Close())
	require.Zero(t, client.Calls(objcli.OpGetObject))
	require.Zero(t, client.Calls(objcli.OpPutObject))
}

func TestFlushThenAppend(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	file := newTestFile(t, client)

	_, err := file.WriteString("abc\n")
	require.NoError(t, err)
	require.NoError(t, file.Flush())
	require.Equal(t, []byte("abc\n"), objcli.TestDownloadRAW(t, client, "bucket", "key.txt"))
	require.Equal(t, int64(4), file.Tell())

	_, err = file.WriteString("abc\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())
	require.Equal(t, []byte("abc\nabc\n"), objcli.TestDownloadRAW(t, client, "bucket", "key.txt"))
	require.Equal(t, 2, client.Calls(objcli.OpPutObject))
}

func TestNotFoundIsEmpty(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	file := newTestFile(t, client)

	data, err := file.ReadAll()
	require.NoError(t, err)
	require.Empty(t, data)

	_, err = file.ReadN(1)
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, file.Close())
	require.Zero(t, client.Calls(objcli.OpPutObject))
}

func TestFailedGetRetries(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	objcli.TestUploadRAW(t, client, "bucket", "key.txt", []byte("hello"))
	client.FailNext(objcli.OpGetObject, objerr.ErrUnauthorized)

	file := newTestFile(t, client)

	_, err := file.ReadAll()
	require.ErrorIs(t, err, objerr.ErrUnauthorized)
	require.Equal(t, stateUnfetched, file.state)

	data, err := file.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)
	require.Equal(t, 2, client.Calls(objcli.OpGetObject))
}

func TestFailedPutKeepsDirty(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	client.FailNext(objcli.OpPutObject, assert.AnError)

	file := newTestFile(t, client)

	_, err := file.WriteString("value")
	require.NoError(t, err)

	err = file.Close()
	require.ErrorIs(t, err, assert.AnError)
	require.False(t, file.Closed())
	require.Equal(t, stateDirty, file.state)
	objcli.TestRequireKeyNotFound(t, client, "bucket", "key.txt")

	require.NoError(t, file.Close())
	require.True(t, file.Closed())
	require.Equal(t, []byte("value"), objcli.TestDownloadRAW(t, client, "bucket", "key.txt"))
}

func TestWriteBeforeReadIsAuthoritative(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	objcli.TestUploadRAW(t, client, "bucket", "key.txt", []byte("hello world"))

	file := newTestFile(t, client)

	_, err := file.WriteString("HE")
	require.NoError(t, err)

	data, err := file.ReadAll()
	require.NoError(t, err)
	require.Empty(t, data)

	require.NoError(t, file.Close())
	require.Zero(t, client.Calls(objcli.OpGetObject))
	require.Equal(t, []byte("HE"), objcli.TestDownloadRAW(t, client, "bucket", "key.txt"))
}

func TestWriteOverwritesAndExtends(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	objcli.TestUploadRAW(t, client, "bucket", "key.txt", []byte("hello world"))

	file := newTestFile(t, client)

	_, err := file.Seek(6, io.SeekStart)
	require.NoError(t, err)

	_, err = file.WriteString("there!")
	require.NoError(t, err)
	require.Equal(t, int64(12), file.Tell())

	require.NoError(t, file.WriteLines([]byte("\n"), []byte("line\n")))
	require.NoError(t, file.Close())
	require.Equal(t, []byte("hello there!\nline\n"), objcli.TestDownloadRAW(t, client, "bucket", "key.txt"))
}

func TestWriteLinesEmptyMarksDirty(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	file := newTestFile(t, client)

	require.NoError(t, file.WriteLines())
	require.NoError(t, file.Close())
	require.Equal(t, 1, client.Calls(objcli.OpPutObject))
}

func TestUsageAfterClose(t *testing.T) {
	file := newTestFile(t, objcli.NewTestClient(t, objval.ProviderAWS))
	require.NoError(t, file.Close())

	operations := map[string]func() error{
		"Read":             func() error { _, err := file.Read(make([]byte, 1)); return err },
		"ReadN":            func() error { _, err := file.ReadN(1); return err },
		"ReadAll":          func() error { _, err := file.ReadAll(); return err },
		"ReadLine":         func() error { _, err := file.ReadLine(); return err },
		"ReadLineN":        func() error { _, err := file.ReadLineN(1); return err },
		"ReadLines":        func() error { _, err := file.ReadLines(); return err },
		"Write":            func() error { _, err := file.Write([]byte("a")); return err },
		"WriteString":      func() error { _, err := file.WriteString("a"); return err },
		"WriteLines":       func() error { return file.WriteLines([]byte("a")) },
		"Seek":             func() error { _, err := file.Seek(0, io.SeekStart); return err },
		"Truncate":         func() error { return file.Truncate(0) },
		"TruncateAtCursor": file.TruncateAtCursor,
		"Flush":            file.Flush,
		"Close":            file.Close,
		"Lines": func() error {
			for _, err := range file.Lines() {
				return err
			}

			return nil
		},
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			err := operation()
			require.ErrorIs(t, err, ErrClosed)
			require.True(t, IsUsageError(err))
		})
	}

	require.True(t, file.Closed())
}

func TestAccessorsAfterClose(t *testing.T) {
	file, _ := newSeekTestFile(t)

	_, err := file.Seek(4, io.SeekStart)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	require.Zero(t, file.Tell())
	require.Equal(t, "s3://bucket/key.txt", file.Name())
	require.Equal(t, "bucket", file.Bucket())
	require.Equal(t, "key.txt", file.Key())
}

func TestMetadata(t *testing.T) {
	var (
		client = objcli.NewTestClient(t, objval.ProviderAWS)
		now    = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	)

	file, err := Open(OpenOptions{
		Client:         client,
		URL:            "objectstore://bucket/page.html",
		Private:        true,
		ExpirationDays: 1,
		TimeProvider:   timeprovider.NewFakeTimeProvider(now),
	})
	require.NoError(t, err)

	_, err = file.WriteString("<html></html>")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	expected := objval.Metadata{
		ContentType:  "text/html; charset=utf-8",
		ACL:          objval.ACLPrivate,
		Expires:      ptr.To(now.Add(24 * time.Hour)),
		CacheControl: "max-age=86400",
	}

	require.Equal(t, expected, objcli.TestObjectMetadata(t, client, "bucket", "page.html"))
}

func TestMetadataExpiresRelativeToStore(t *testing.T) {
	var (
		client = objcli.NewTestClient(t, objval.ProviderAWS)
		now    = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		clock  = timeprovider.NewFakeTimeProvider(now)
	)

	file, err := Open(OpenOptions{
		Client:         client,
		URL:            testURL,
		ExpirationDays: 1,
		TimeProvider:   clock,
	})
	require.NoError(t, err)

	clock.AdvanceTimeBy(48 * time.Hour)

	_, err = file.WriteString("first")
	require.NoError(t, err)
	require.NoError(t, file.Flush())

	metadata := objcli.TestObjectMetadata(t, client, "bucket", "key.txt")
	require.Equal(t, ptr.To(now.Add(72*time.Hour)), metadata.Expires)

	clock.AdvanceTimeBy(24 * time.Hour)

	_, err = file.WriteString("second")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	metadata = objcli.TestObjectMetadata(t, client, "bucket", "key.txt")
	require.Equal(t, ptr.To(now.Add(96*time.Hour)), metadata.Expires)
}

func TestMetadataExplicitContentType(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	file, err := Open(OpenOptions{Client: client, URL: testURL, ContentType: "application/json"})
	require.NoError(t, err)

	_, err = file.WriteString("{}")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	metadata := objcli.TestObjectMetadata(t, client, "bucket", "key.txt")
	require.Equal(t, "application/json", metadata.ContentType)
	require.Equal(t, objval.ACLPublicRead, metadata.ACL)
	require.Nil(t, metadata.Expires)
}

func TestName(t *testing.T) {
	type test struct {
		name     string
		provider objval.Provider
		expected string
	}

	tests := []*test{
		{name: "AWS", provider: objval.ProviderAWS, expected: "s3://bucket/key.txt"},
		{name: "GCP", provider: objval.ProviderGCP, expected: "gs://bucket/key.txt"},
		{name: "Azure", provider: objval.ProviderAzure, expected: "az://bucket/key.txt"},
		{name: "None", provider: objval.ProviderNone, expected: "objectstore://bucket/key.txt"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, newTestFile(t, objcli.NewTestClient(t, test.provider)).Name())
		})
	}
}

func TestOpenUsesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	file, err := Open(OpenOptions{Context: ctx, Client: objcli.NewTestClient(t, objval.ProviderAWS), URL: testURL})
	require.NoError(t, err)
	require.Equal(t, ctx, file.ctx)
}

func TestUsageErrorMessage(t *testing.T) {
	err := &UsageError{Op: "seek", Err: ErrNegativeOffset}
	require.Equal(t, "invalid use of 'seek': negative position", err.Error())
	require.True(t, errors.Is(err, ErrNegativeOffset))
}
