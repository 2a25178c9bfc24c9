// Package objgcp provides an implementation of 'objcli.Client' for use with GCS.
package objgcp

import (
	"context"
	"crypto/md5"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"net/http"

	"cloud.google.com/go/storage"

	"github.com/couchbase/tools-objfile/core/log"
	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/types/ptr"
)

// MetadataKeyExpires is the custom metadata key used to store the expiration time of an object, Google Storage doesn't
// support the 'Expires' header.
const MetadataKeyExpires = "expires"

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in Google Storage.
type Client struct {
	serviceAPI serviceAPI
	projectID  string
	logger     *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new GCP Client.
type ClientOptions struct {
	// Client is a client for interacting with Google Cloud Storage.
	//
	// NOTE: Required
	Client *storage.Client

	// ProjectID is the project in which new buckets are created.
	//
	// NOTE: Only required when buckets are created.
	ProjectID string

	// Logger is the logger used by the client, defaults to 'slog.Default()'.
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	ptr.SetIfNil(&c.Logger, slog.Default())
}

// NewClient returns a new client which uses the given storage client, in general this should be the one created using
// the 'storage.NewClient' function exposed by the SDK.
func NewClient(options ClientOptions) *Client {
	options.defaults()

	return &Client{
		serviceAPI: serviceClient{options.Client},
		projectID:  options.ProjectID,
		logger:     options.Logger,
	}
}

func (c *Client) Provider() objval.Provider {
	return objval.ProviderGCP
}

func (c *Client) BucketExists(ctx context.Context, opts objcli.BucketExistsOptions) (bool, error) {
	_, err := c.serviceAPI.Bucket(opts.Bucket).Attrs(ctx)
	if err == nil {
		return true, nil
	}

	err = handleError(opts.Bucket, "", err)
	if isNotFound(err) {
		return false, nil
	}

	return false, err
}

func (c *Client) CreateBucket(ctx context.Context, opts objcli.CreateBucketOptions) error {
	err := c.serviceAPI.Bucket(opts.Bucket).Create(ctx, c.projectID, nil)
	if isConflict(err) {
		c.logger.Debug("(Objgcp) Bucket already exists", log.UserData("bucket", opts.Bucket))
		return nil
	}

	if err != nil {
		return handleError(opts.Bucket, "", err)
	}

	c.logger.Info("(Objgcp) Created bucket", log.UserData("bucket", opts.Bucket))

	return nil
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*objval.Object, error) {
	reader, err := c.serviceAPI.Bucket(opts.Bucket).Object(opts.Key).NewRangeReader(ctx, 0, -1)
	if err != nil {
		return nil, handleError(opts.Bucket, opts.Key, err)
	}

	remote := reader.Attrs()

	attrs := objval.ObjectAttrs{
		Key:          opts.Key,
		Size:         ptr.To(remote.Size),
		LastModified: ptr.To(remote.LastModified),
	}

	object := &objval.Object{
		ObjectAttrs: attrs,
		Body:        reader,
	}

	return object, nil
}

func (c *Client) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var (
		md5sum = md5.New()
		crc32c = crc32.New(crc32.MakeTable(crc32.Castagnoli))
		writer = c.serviceAPI.Bucket(opts.Bucket).Object(opts.Key).NewWriter(ctx)
	)

	_, err := objcli.CopyReadSeeker(io.MultiWriter(md5sum, crc32c), opts.Body)
	if err != nil {
		return fmt.Errorf("failed to calculate checksums: %w", err)
	}

	applyMetadata(writer.ObjectAttrs(), opts.Metadata)

	writer.SendMD5(md5sum.Sum(nil))
	writer.SendCRC(crc32c.Sum32())

	// Cancelling the context (deferred above) aborts the upload if the copy fails
	_, err = io.Copy(writer, opts.Body)
	if err != nil {
		return handleError(opts.Bucket, opts.Key, err)
	}

	return handleError(opts.Bucket, opts.Key, writer.Close())
}

func (c *Client) Close() error {
	return c.serviceAPI.Close()
}

// applyMetadata sets the write-time attributes of the object from the given metadata.
func applyMetadata(attrs *storage.ObjectAttrs, metadata objval.Metadata) {
	attrs.ContentType = metadata.ContentType
	attrs.CacheControl = metadata.CacheControl
	attrs.PredefinedACL = predefinedACL(metadata.ACL)

	if metadata.Expires == nil {
		return
	}

	if attrs.Metadata == nil {
		attrs.Metadata = make(map[string]string)
	}

	attrs.Metadata[MetadataKeyExpires] = metadata.Expires.UTC().Format(http.TimeFormat)
}

// predefinedACL converts the given ACL into the name used by the JSON API.
func predefinedACL(acl objval.ACL) string {
	if acl == objval.ACLPrivate {
		return "private"
	}

	return "publicRead"
}
