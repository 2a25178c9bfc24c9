package objerr

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	type test struct {
		name   string
		input  error
		output error
	}

	tests := []*test{
		{
			name:   "ErrEndpointResolutionFailed",
			input:  &net.DNSError{IsNotFound: true},
			output: ErrEndpointResolutionFailed,
		},
		{
			name:   "WrappedDNSError",
			input:  fmt.Errorf("dial: %w", &net.DNSError{IsNotFound: true}),
			output: ErrEndpointResolutionFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, HandleError(test.input), test.output)
			require.ErrorIs(t, TryHandleError(test.input), test.output)
		})
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	require.ErrorIs(t, HandleError(assert.AnError), assert.AnError)
	require.NoError(t, HandleError(nil))
}

func TestTryHandleErrorUnknown(t *testing.T) {
	require.Nil(t, TryHandleError(assert.AnError))
	require.Nil(t, TryHandleError(&net.DNSError{IsTemporary: true}))
}

func TestIsNotFoundError(t *testing.T) {
	err := fmt.Errorf("failed to get object: %w", &NotFoundError{Type: "key", Name: "path/to/key"})

	require.True(t, IsNotFoundError(err))
	require.False(t, IsNotFoundError(assert.AnError))
	require.Equal(t, "key 'path/to/key' not found", (&NotFoundError{Type: "key", Name: "path/to/key"}).Error())
}

func TestBucketCreationError(t *testing.T) {
	err := fmt.Errorf("failed to open: %w", &BucketCreationError{Bucket: "bucket", Err: ErrUnauthorized})

	require.True(t, IsBucketCreationError(err))
	require.False(t, IsBucketCreationError(ErrUnauthorized))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Contains(t, err.Error(), "failed to create bucket 'bucket'")
}
