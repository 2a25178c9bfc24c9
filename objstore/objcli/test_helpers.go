package objcli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/objstore/objval"
	testutil "github.com/couchbase/tools-objfile/testing/util"
)

// TestUploadRAW uploads the given raw data.
func TestUploadRAW(t *testing.T, client Client, bucket, key string, body []byte) {
	err := client.PutObject(context.Background(), PutObjectOptions{
		Bucket: bucket,
		Key:    key,
		Body:   bytes.NewReader(body),
	})
	require.NoError(t, err)
}

// TestDownloadRAW downloads the object as raw data.
func TestDownloadRAW(t *testing.T, client Client, bucket, key string) []byte {
	object, err := client.GetObject(context.Background(), GetObjectOptions{
		Bucket: bucket,
		Key:    key,
	})
	require.NoError(t, err)

	return testutil.ReadAllAndClose(t, object.Body)
}

// TestRequireKeyNotFound asserts that the given key does not exist.
func TestRequireKeyNotFound(t *testing.T, client Client, bucket, key string) {
	_, err := client.GetObject(context.Background(), GetObjectOptions{
		Bucket: bucket,
		Key:    key,
	})
	require.True(t, objerr.IsNotFoundError(err))
}

// TestObjectMetadata returns the metadata stored alongside the given object by a 'TestClient'.
func TestObjectMetadata(t *testing.T, client *TestClient, bucket, key string) objval.Metadata {
	client.lock.RLock()
	defer client.lock.RUnlock()

	object, err := client.getObjectRLocked(bucket, key)
	require.NoError(t, err)

	return object.Metadata
}
