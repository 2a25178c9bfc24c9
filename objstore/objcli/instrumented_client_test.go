package objcli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/objstore/objval"
)

func newTestInstrumentedClient(t *testing.T) (*InstrumentedClient, *TestClient, *ClientMetrics) {
	metrics, err := NewClientMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	testClient := NewTestClient(t, objval.ProviderAWS)

	return NewInstrumentedClient(testClient, metrics), testClient, metrics
}

func TestInstrumentedClientPutGetObject(t *testing.T) {
	client, _, metrics := newTestInstrumentedClient(t)

	err := client.PutObject(context.Background(), PutObjectOptions{
		Bucket: bucket,
		Key:    key,
		Body:   bytes.NewReader(testData),
	})
	require.NoError(t, err)

	obj, err := client.GetObject(context.Background(), GetObjectOptions{Bucket: bucket, Key: key})
	require.NoError(t, err)

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())
	require.Equal(t, testData, data)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ops.WithLabelValues(string(OpPutObject), "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ops.WithLabelValues(string(OpGetObject), "ok")))
	require.Equal(t, float64(dataSize), testutil.ToFloat64(metrics.bytes.WithLabelValues(string(OpPutObject))))
	require.Equal(t, float64(dataSize), testutil.ToFloat64(metrics.bytes.WithLabelValues(string(OpGetObject))))
	require.Equal(t, 2, testutil.CollectAndCount(metrics.latency))
}

func TestInstrumentedClientRecordsErrors(t *testing.T) {
	client, testClient, metrics := newTestInstrumentedClient(t)

	_, err := client.GetObject(context.Background(), GetObjectOptions{Bucket: bucket, Key: key})
	require.True(t, objerr.IsNotFoundError(err))

	testClient.FailNext(OpPutObject, objerr.ErrUnauthorized)

	err = client.PutObject(context.Background(), PutObjectOptions{
		Bucket: bucket,
		Key:    key,
		Body:   bytes.NewReader(testData),
	})
	require.ErrorIs(t, err, objerr.ErrUnauthorized)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ops.WithLabelValues(string(OpGetObject), "error")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ops.WithLabelValues(string(OpPutObject), "error")))
	require.Equal(t, 0, testutil.CollectAndCount(metrics.bytes))
}

func TestInstrumentedClientBuckets(t *testing.T) {
	client, _, metrics := newTestInstrumentedClient(t)

	require.NoError(t, client.CreateBucket(context.Background(), CreateBucketOptions{Bucket: bucket}))

	exists, err := client.BucketExists(context.Background(), BucketExistsOptions{Bucket: bucket})
	require.NoError(t, err)
	require.True(t, exists)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ops.WithLabelValues(string(OpCreateBucket), "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.ops.WithLabelValues(string(OpBucketExists), "ok")))
	require.Equal(t, objval.ProviderAWS, client.Provider())
}

func TestNewClientMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewClientMetrics(reg)
	require.NoError(t, err)

	_, err = NewClientMetrics(reg)
	require.Error(t, err)
}
