package objcli

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchbase/tools-objfile/objstore/objval"
)

// ClientMetrics holds the Prometheus collectors recorded by an 'InstrumentedClient'.
type ClientMetrics struct {
	ops     *prometheus.CounterVec
	bytes   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewClientMetrics creates the client collectors and registers them with the given registerer.
func NewClientMetrics(reg prometheus.Registerer) (*ClientMetrics, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "objfile",
		Subsystem: "client",
		Name:      "ops_total",
		Help:      "Total number of object store operations by result.",
	}, []string{"op", "result"}) // result = "ok" | "error"

	bytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "objfile",
		Subsystem: "client",
		Name:      "bytes_total",
		Help:      "Total bytes transferred by object store operations.",
	}, []string{"op"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "objfile",
		Subsystem: "client",
		Name:      "op_duration_seconds",
		Help:      "Histogram of object store operation durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	for _, collector := range []prometheus.Collector{ops, bytes, latency} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return &ClientMetrics{ops: ops, bytes: bytes, latency: latency}, nil
}

// Observe records a single operation, 'n' being the number of bytes transferred (if any).
func (m *ClientMetrics) Observe(op Op, n int64, err error, dur time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	m.addBytes(op, n)
	m.ops.WithLabelValues(string(op), result).Inc()
	m.latency.WithLabelValues(string(op)).Observe(dur.Seconds())
}

func (m *ClientMetrics) addBytes(op Op, n int64) {
	if n > 0 {
		m.bytes.WithLabelValues(string(op)).Add(float64(n))
	}
}

// InstrumentedClient implements the 'Client' interface by deferring to the underlying client whilst recording
// operation counts, durations and transferred bytes.
//
// NOTE: Downloaded bytes are recorded as the object body is read, the duration of 'GetObject' only covers the request.
type InstrumentedClient struct {
	c       Client
	metrics *ClientMetrics
}

var _ Client = (*InstrumentedClient)(nil)

// NewInstrumentedClient returns an InstrumentedClient.
func NewInstrumentedClient(c Client, metrics *ClientMetrics) *InstrumentedClient {
	return &InstrumentedClient{c: c, metrics: metrics}
}

func (i *InstrumentedClient) Provider() objval.Provider {
	return i.c.Provider()
}

func (i *InstrumentedClient) BucketExists(ctx context.Context, opts BucketExistsOptions) (bool, error) {
	start := time.Now()

	exists, err := i.c.BucketExists(ctx, opts)

	i.metrics.Observe(OpBucketExists, 0, err, time.Since(start))

	return exists, err
}

func (i *InstrumentedClient) CreateBucket(ctx context.Context, opts CreateBucketOptions) error {
	start := time.Now()

	err := i.c.CreateBucket(ctx, opts)

	i.metrics.Observe(OpCreateBucket, 0, err, time.Since(start))

	return err
}

func (i *InstrumentedClient) GetObject(ctx context.Context, opts GetObjectOptions) (*objval.Object, error) {
	start := time.Now()

	obj, err := i.c.GetObject(ctx, opts)

	i.metrics.Observe(OpGetObject, 0, err, time.Since(start))

	if err != nil {
		return nil, err
	}

	obj.Body = &countingReadCloser{r: obj.Body, fn: func(n int) { i.metrics.addBytes(OpGetObject, int64(n)) }}

	return obj, nil
}

func (i *InstrumentedClient) PutObject(ctx context.Context, opts PutObjectOptions) error {
	length, err := SeekerLength(opts.Body)
	if err != nil {
		return err
	}

	start := time.Now()

	err = i.c.PutObject(ctx, opts)
	if err != nil {
		length = 0
	}

	i.metrics.Observe(OpPutObject, length, err, time.Since(start))

	return err
}

func (i *InstrumentedClient) Close() error {
	return i.c.Close()
}

// countingReadCloser reports the number of bytes read from the wrapped body.
type countingReadCloser struct {
	r  io.ReadCloser
	fn func(n int)
}

func (c *countingReadCloser) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.fn(n)

	return n, err
}

func (c *countingReadCloser) Close() error {
	return c.r.Close()
}
