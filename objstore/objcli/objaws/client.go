// Package objaws provides an implementation of 'objcli.Client' for use with AWS S3.
package objaws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/couchbase/tools-objfile/core/log"
	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/types/ptr"
)

// defaultRegion is the region in which buckets are created when no location constraint is provided.
const defaultRegion = "us-east-1"

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in AWS S3.
type Client struct {
	serviceAPI serviceAPI
	region     string
	logger     *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new AWS Client.
type ClientOptions struct {
	// ServiceAPI is the is the minimal subset of functions that we use from the AWS SDK, this allows for a greatly
	// reduce surface area for mock generation.
	//
	// NOTE: Required
	ServiceAPI serviceAPI

	// Region is the region in which new buckets are created, defaults to 'us-east-1'.
	Region string

	// Logger is the logger used by the client, defaults to 'slog.Default()'.
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	if c.Region == "" {
		c.Region = defaultRegion
	}

	ptr.SetIfNil(&c.Logger, slog.Default())
}

// NewClient returns a new client which uses the given 'serviceAPI', in general this should be the one created using the
// 's3.NewFromConfig' function exposed by the SDK.
func NewClient(options ClientOptions) *Client {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	client := Client{
		serviceAPI: options.ServiceAPI,
		region:     options.Region,
		logger:     options.Logger,
	}

	return &client
}

func (c *Client) Provider() objval.Provider {
	return objval.ProviderAWS
}

func (c *Client) BucketExists(ctx context.Context, opts objcli.BucketExistsOptions) (bool, error) {
	input := &s3.HeadBucketInput{
		Bucket: ptr.To(opts.Bucket),
	}

	_, err := c.serviceAPI.HeadBucket(ctx, input)
	if isBucketNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, handleError(input.Bucket, nil, err)
	}

	return true, nil
}

func (c *Client) CreateBucket(ctx context.Context, opts objcli.CreateBucketOptions) error {
	input := &s3.CreateBucketInput{
		Bucket: ptr.To(opts.Bucket),
	}

	// Buckets in the default region must not specify a location constraint
	if c.region != defaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.region),
		}
	}

	_, err := c.serviceAPI.CreateBucket(ctx, input)
	if isBucketAlreadyExists(err) {
		c.logger.Debug("(Objaws) Bucket already exists", log.UserData("bucket", opts.Bucket))
		return nil
	}

	if err != nil {
		return handleError(input.Bucket, nil, err)
	}

	c.logger.Info("(Objaws) Created bucket", log.UserData("bucket", opts.Bucket), "region", c.region)

	return nil
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*objval.Object, error) {
	input := &s3.GetObjectInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	resp, err := c.serviceAPI.GetObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := objval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         resp.ETag,
		Size:         resp.ContentLength,
		LastModified: resp.LastModified,
	}

	object := &objval.Object{
		ObjectAttrs: attrs,
		Body:        resp.Body,
	}

	return object, nil
}

func (c *Client) PutObject(ctx context.Context, opts objcli.PutObjectOptions) error {
	length, err := objcli.SeekerLength(opts.Body)
	if err != nil {
		return fmt.Errorf("failed to determine body length: %w", err)
	}

	input := &s3.PutObjectInput{
		Body:          opts.Body,
		Bucket:        ptr.To(opts.Bucket),
		Key:           ptr.To(opts.Key),
		ContentLength: ptr.To(length),
		ACL:           types.ObjectCannedACL(opts.Metadata.ACL.String()),
		Expires:       opts.Metadata.Expires,
	}

	if opts.Metadata.ContentType != "" {
		input.ContentType = ptr.To(opts.Metadata.ContentType)
	}

	if opts.Metadata.CacheControl != "" {
		input.CacheControl = ptr.To(opts.Metadata.CacheControl)
	}

	_, err = c.serviceAPI.PutObject(ctx, input)

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) Close() error {
	return nil
}
