// Package objazure provides an implementation of 'objcli.Client' for use with Azure blob storage.
package objazure

import (
	"context"
	"crypto/md5"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	"github.com/couchbase/tools-objfile/core/log"
	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/types/ptr"
)

// MetadataKeyExpires is the blob metadata key used to store the expiration time of an object, Azure doesn't support the
// 'Expires' header.
const MetadataKeyExpires = "expires"

// NOTE: As apposed to AWS/GCP, Azure use the container/blob naming convention, however, for consistency the Azure
// client implementation continues to use the bucket/key names.

// Client implements the 'objcli.Client' interface allowing the creation/management of blobs stored in Azure blob store.
type Client struct {
	serviceAPI   serviceAPI
	publicAccess *container.PublicAccessType
	logger       *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new Azure Client.
type ClientOptions struct {
	// Client represents a URL to the Azure Blob Storage service allowing you to manipulate blob containers.
	//
	// NOTE: Required
	Client *service.Client

	// PublicAccess is the access level applied to containers created by the client.
	//
	// NOTE: Azure doesn't support per-blob ACLs, when <nil> created containers are private.
	PublicAccess *container.PublicAccessType

	// Logger is the logger used by the client, defaults to 'slog.Default()'.
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	ptr.SetIfNil(&c.Logger, slog.Default())
}

// NewClient returns a new client which uses the given service client, in general this should be the one created using
// the 'service.NewClient' function exposed by the SDK.
func NewClient(options ClientOptions) *Client {
	options.defaults()

	return &Client{
		serviceAPI:   &serviceClient{client: options.Client},
		publicAccess: options.PublicAccess,
		logger:       options.Logger,
	}
}

func (c *Client) getBlobBlockClient(bucket, key string) blockBlobAPI {
	container := c.serviceAPI.NewContainerClient(bucket)
	return container.NewBlockBlobClient(key)
}

func (c *Client) Provider() objval.Provider {
	return objval.ProviderAzure
}

func (c *Client) BucketExists(ctx context.Context, opts objcli.BucketExistsOptions) (bool, error) {
	_, err := c.serviceAPI.NewContainerClient(opts.Bucket).GetProperties(ctx, nil)
	if isContainerNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, handleError(opts.Bucket, "", err)
	}

	return true, nil
}

func (c *Client) CreateBucket(ctx context.Context, opts objcli.CreateBucketOptions) error {
	_, err := c.serviceAPI.NewContainerClient(opts.Bucket).Create(ctx, &container.CreateOptions{Access: c.publicAccess})
	if isContainerAlreadyExists(err) {
		c.logger.Debug("(Objazure) Container already exists", log.UserData("container", opts.Bucket))
		return nil
	}

	if err != nil {
		return handleError(opts.Bucket, "", err)
	}

	c.logger.Info("(Objazure) Created container", log.UserData("container", opts.Bucket))

	return nil
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*objval.Object, error) {
	blobClient := c.getBlobBlockClient(opts.Bucket, opts.Key)

	resp, err := blobClient.DownloadStream(ctx, &blob.DownloadStreamOptions{})
	if err != nil {
		return nil, handleError(opts.Bucket, opts.Key, err)
	}

	attrs := objval.ObjectAttrs{
		Key:          opts.Key,
		Size:         resp.ContentLength,
		LastModified: resp.LastModified,
	}

	if resp.ETag != nil {
		attrs.ETag = ptr.To(string(*resp.ETag))
	}

	object := &objval.Object{
		ObjectAttrs: attrs,
		Body:        resp.Body,
	}

	return object, nil
}

func (c *Client) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	blobClient := c.getBlobBlockClient(opts.Bucket, opts.Key)

	md5sum := md5.New()

	_, err := objcli.CopyReadSeeker(md5sum, opts.Body)
	if err != nil {
		return fmt.Errorf("failed to calculate checksums: %w", err)
	}

	_, err = blobClient.Upload(ctx, streaming.NopCloser(opts.Body), uploadOptions(md5sum.Sum(nil), opts.Metadata))

	return handleError(opts.Bucket, opts.Key, err)
}

func (c *Client) Close() error {
	return nil
}

// uploadOptions returns the options used to upload a blob with the given checksum/metadata.
func uploadOptions(md5sum []byte, metadata objval.Metadata) *blockblob.UploadOptions {
	options := &blockblob.UploadOptions{
		TransactionalValidation: blob.TransferValidationTypeMD5(md5sum),
		HTTPHeaders:             &blob.HTTPHeaders{},
	}

	if metadata.ContentType != "" {
		options.HTTPHeaders.BlobContentType = ptr.To(metadata.ContentType)
	}

	if metadata.CacheControl != "" {
		options.HTTPHeaders.BlobCacheControl = ptr.To(metadata.CacheControl)
	}

	if metadata.Expires != nil {
		options.Metadata = map[string]*string{
			MetadataKeyExpires: ptr.To(metadata.Expires.UTC().Format(http.TimeFormat)),
		}
	}

	return options
}
