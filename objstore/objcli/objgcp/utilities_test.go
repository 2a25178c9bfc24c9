package objgcp

import (
	"fmt"
	"net"
	"net/http"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/couchbase/tools-objfile/objstore/objerr"
)

func TestHandleError(t *testing.T) {
	var notFound *objerr.NotFoundError

	err := handleError("bucket", "key", nil)
	require.NoError(t, err)

	err = handleError("bucket", "key", &googleapi.Error{Code: http.StatusUnauthorized})
	require.ErrorIs(t, err, objerr.ErrUnauthenticated)

	err = handleError("bucket", "key", &googleapi.Error{Code: http.StatusForbidden})
	require.ErrorIs(t, err, objerr.ErrUnauthorized)

	err = handleError("bucket", "key", storage.ErrObjectNotExist)
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "key", notFound.Type)
	require.Equal(t, "key", notFound.Name)

	err = handleError("bucket", "", storage.ErrObjectNotExist)
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "<empty key name>", notFound.Name)

	err = handleError("bucket", "key", fmt.Errorf("attrs: %w", storage.ErrBucketNotExist))
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "bucket", notFound.Type)
	require.Equal(t, "bucket", notFound.Name)

	err = handleError("", "key", storage.ErrBucketNotExist)
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "<empty bucket name>", notFound.Name)

	err = handleError("bucket", "key", &net.DNSError{IsNotFound: true})
	require.ErrorIs(t, err, objerr.ErrEndpointResolutionFailed)

	err = handleError("bucket", "key", assert.AnError)
	require.ErrorIs(t, err, assert.AnError)
}

func TestIsConflict(t *testing.T) {
	require.False(t, isConflict(nil))
	require.False(t, isConflict(assert.AnError))
	require.False(t, isConflict(&googleapi.Error{Code: http.StatusForbidden}))
	require.True(t, isConflict(&googleapi.Error{Code: http.StatusConflict}))
}
