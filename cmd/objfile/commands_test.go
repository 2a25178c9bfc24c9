package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-objfile/internal/config"
	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objval"
)

func newTestEnvironment(t *testing.T, stdin string) (*environment, *objcli.TestClient, *bytes.Buffer) {
	var (
		client = objcli.NewTestClient(t, objval.ProviderAWS)
		stdout = &bytes.Buffer{}
	)

	env := &environment{
		ctx:    context.Background(),
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdin:  strings.NewReader(stdin),
		stdout: stdout,
	}

	return env, client, stdout
}

func TestRunCat(t *testing.T) {
	env, client, stdout := newTestEnvironment(t, "")
	objcli.TestUploadRAW(t, client, "bucket", "key", []byte("hello world"))

	require.NoError(t, runCat(env, []string{"s3://bucket/key"}))
	require.Equal(t, "hello world", stdout.String())
	require.Equal(t, 1, client.Calls(objcli.OpGetObject))
}

func TestRunCatMissingArgument(t *testing.T) {
	env, _, _ := newTestEnvironment(t, "")
	require.Error(t, runCat(env, nil))
}

func TestRunHead(t *testing.T) {
	env, client, stdout := newTestEnvironment(t, "")
	objcli.TestUploadRAW(t, client, "bucket", "key", []byte("1\n2\n3\n4\n"))

	require.NoError(t, runHead(env, []string{"-n", "2", "objectstore://bucket/key"}))
	require.Equal(t, "1\n2\n", stdout.String())
}

func TestRunPut(t *testing.T) {
	env, client, _ := newTestEnvironment(t, "from stdin")

	require.NoError(t, runPut(env, []string{"-private", "-expiration-days", "1", "s3://bucket/file.txt"}))
	require.Equal(t, []byte("from stdin"), objcli.TestDownloadRAW(t, client, "bucket", "file.txt"))
	require.Equal(t, 1, client.Calls(objcli.OpCreateBucket))

	metadata := objcli.TestObjectMetadata(t, client, "bucket", "file.txt")
	require.Equal(t, objval.ACLPrivate, metadata.ACL)
	require.Equal(t, "text/plain; charset=utf-8", metadata.ContentType)
	require.Equal(t, "max-age=86400", metadata.CacheControl)
}

func TestRunPutFromFile(t *testing.T) {
	env, client, _ := newTestEnvironment(t, "")

	path := filepath.Join(t.TempDir(), "source")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))

	require.NoError(t, runPut(env, []string{"-create=false", "s3://bucket/key", path}))
	require.Equal(t, []byte("from file"), objcli.TestDownloadRAW(t, client, "bucket", "key"))
	require.Zero(t, client.Calls(objcli.OpBucketExists))
}

func TestRunPutAppend(t *testing.T) {
	env, client, _ := newTestEnvironment(t, " world")
	objcli.TestUploadRAW(t, client, "bucket", "key", []byte("hello"))

	require.NoError(t, runPut(env, []string{"-append", "s3://bucket/key"}))
	require.Equal(t, []byte("hello world"), objcli.TestDownloadRAW(t, client, "bucket", "key"))
}

func TestRunTruncate(t *testing.T) {
	type test struct {
		name     string
		size     string
		expected []byte
	}

	tests := []*test{
		{name: "Shrink", size: "5", expected: []byte("hello")},
		{name: "Empty", size: "0", expected: []byte{}},
		{name: "Extend", size: "13", expected: []byte("hello world\x00\x00")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env, client, _ := newTestEnvironment(t, "")
			objcli.TestUploadRAW(t, client, "bucket", "key", []byte("hello world"))

			require.NoError(t, runTruncate(env, []string{"s3://bucket/key", test.size}))
			require.Equal(t, test.expected, objcli.TestDownloadRAW(t, client, "bucket", "key"))
		})
	}
}

func TestRunTruncateInvalidSize(t *testing.T) {
	env, _, _ := newTestEnvironment(t, "")
	require.ErrorContains(t, runTruncate(env, []string{"s3://bucket/key", "big"}), "invalid size")
}

func TestRunUsage(t *testing.T) {
	var stderr bytes.Buffer

	require.Equal(t, 2, run(nil, strings.NewReader(""), io.Discard, &stderr))
	require.Contains(t, stderr.String(), "truncate")

	stderr.Reset()

	require.Equal(t, 2, run([]string{"unknown"}, strings.NewReader(""), io.Discard, &stderr))
	require.Contains(t, stderr.String(), "unknown command 'unknown'")
}

func TestWrapClient(t *testing.T) {
	var (
		client   = objcli.NewTestClient(t, objval.ProviderAWS)
		registry = prometheus.NewRegistry()
	)

	wrapped, err := wrapClient(client, config.Config{RateLimit: 1024 * 1024, MaxRetries: 1}, registry, slog.Default())
	require.NoError(t, err)
	require.IsType(t, &objcli.InstrumentedClient{}, wrapped)

	client.FailNext(objcli.OpPutObject, io.ErrUnexpectedEOF)

	objcli.TestUploadRAW(t, wrapped, "bucket", "key", []byte("value"))
	require.Equal(t, 2, client.Calls(objcli.OpPutObject))

	count, err := testutil.GatherAndCount(registry, "objfile_client_ops_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, err = wrapClient(client, config.Config{}, registry, slog.Default())
	require.Error(t, err)
}

func TestLogMetrics(t *testing.T) {
	var (
		registry = prometheus.NewRegistry()
		output   bytes.Buffer
	)

	wrapped, err := wrapClient(objcli.NewTestClient(t, objval.ProviderAWS), config.Config{}, registry, slog.Default())
	require.NoError(t, err)

	objcli.TestUploadRAW(t, wrapped, "bucket", "key", []byte("value"))

	logMetrics(slog.New(slog.NewTextHandler(&output, nil)), registry)
	require.Contains(t, output.String(), "metric=objfile_client_ops_total")
	require.Contains(t, output.String(), "op=put_object")
}
