package objazure

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"
)

//go:generate mockgen -source=api.go -destination=mock_api.go -package=objazure

// serviceAPI is a top level interface which allows interactions with the Azure blob storage service.
type serviceAPI interface {
	NewContainerClient(name string) containerAPI
}

// serviceClient implements the 'serviceAPI' interface and encapsulates the Azure SDK in a unit testable interface.
type serviceClient struct {
	client *service.Client
}

func (s *serviceClient) NewContainerClient(name string) containerAPI {
	return &containerClient{client: s.client.NewContainerClient(name)}
}

// containerAPI is a container level interface which allows interactions with an Azure blob storage container.
type containerAPI interface {
	GetProperties(ctx context.Context, o *container.GetPropertiesOptions) (container.GetPropertiesResponse, error)
	Create(ctx context.Context, o *container.CreateOptions) (container.CreateResponse, error)
	NewBlockBlobClient(name string) blockBlobAPI
}

// containerClient implements the 'containerAPI' interface and encapsulates the Azure SDK in a unit testable interface.
type containerClient struct {
	client *container.Client
}

func (c *containerClient) GetProperties(
	ctx context.Context,
	o *container.GetPropertiesOptions,
) (container.GetPropertiesResponse, error) {
	return c.client.GetProperties(ctx, o)
}

func (c *containerClient) Create(ctx context.Context, o *container.CreateOptions) (container.CreateResponse, error) {
	return c.client.Create(ctx, o)
}

func (c *containerClient) NewBlockBlobClient(name string) blockBlobAPI {
	return c.client.NewBlockBlobClient(name)
}

// blockBlobAPI is a block blob interface which allows interactions with a block blob stored in an Azure container.
type blockBlobAPI interface {
	DownloadStream(ctx context.Context, o *blob.DownloadStreamOptions) (blob.DownloadStreamResponse, error)
	Upload(ctx context.Context, body io.ReadSeekCloser, o *blockblob.UploadOptions) (blockblob.UploadResponse, error)
}

var _ blockBlobAPI = (*blockblob.Client)(nil)
