package main

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/couchbase/tools-objfile/internal/config"
	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objcli/objaws"
	"github.com/couchbase/tools-objfile/objstore/objcli/objazure"
	"github.com/couchbase/tools-objfile/objstore/objcli/objgcp"
	"github.com/couchbase/tools-objfile/objstore/objval"
	"github.com/couchbase/tools-objfile/retry"
)

// newClient returns a client for the configured provider, rate limited (when configured) and instrumented with metrics
// registered against the given registerer.
func newClient(
	ctx context.Context,
	cfg config.Config,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (objcli.Client, error) {
	provider, err := cfg.ObjectProvider()
	if err != nil {
		return nil, err
	}

	var client objcli.Client

	switch provider {
	case objval.ProviderAWS:
		client, err = newAWSClient(ctx, cfg, logger)
	case objval.ProviderGCP:
		client, err = newGCPClient(ctx, cfg, logger)
	case objval.ProviderAzure:
		client, err = newAzureClient(cfg, logger)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
	}

	return wrapClient(client, cfg, reg, logger)
}

// wrapClient decorates the given client with rate limiting, retries and metrics.
func wrapClient(
	client objcli.Client,
	cfg config.Config,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (objcli.Client, error) {
	if cfg.MaxRetries > 0 {
		client = objcli.NewRetryingClient(client, retry.RetryerOptions{
			Algorithm:   retry.AlgorithmExponential,
			MaxAttempts: cfg.MaxRetries + 1,
		}, logger)
	}

	if cfg.RateLimit > 0 {
		client = objcli.NewRateLimitedClient(client, rate.NewLimiter(rate.Limit(cfg.RateLimit), int(cfg.RateLimit)))
	}

	metrics, err := objcli.NewClientMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return objcli.NewInstrumentedClient(client, metrics), nil
}

func newAWSClient(ctx context.Context, cfg config.Config, logger *slog.Logger) (objcli.Client, error) {
	options := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}

	if cfg.AccessKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}

		o.UsePathStyle = cfg.PathStyle
	})

	return objaws.NewClient(objaws.ClientOptions{ServiceAPI: api, Region: cfg.Region, Logger: logger}), nil
}

func newGCPClient(ctx context.Context, cfg config.Config, logger *slog.Logger) (objcli.Client, error) {
	var options []option.ClientOption

	if cfg.Endpoint != "" {
		options = append(options, option.WithEndpoint(cfg.Endpoint))
	}

	if cfg.GCP.CredentialsFile != "" {
		options = append(options, option.WithCredentialsFile(cfg.GCP.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, err
	}

	return objgcp.NewClient(objgcp.ClientOptions{Client: client, ProjectID: cfg.GCP.Project, Logger: logger}), nil
}

func newAzureClient(cfg config.Config, logger *slog.Logger) (objcli.Client, error) {
	var (
		client *service.Client
		err    error
	)

	if cfg.AccessKey != "" {
		var credential *service.SharedKeyCredential

		credential, err = service.NewSharedKeyCredential(cfg.AccessKey, cfg.SecretKey)
		if err != nil {
			return nil, err
		}

		client, err = service.NewClientWithSharedKeyCredential(cfg.Azure.AccountURL, credential, nil)
	} else {
		var credential *azidentity.DefaultAzureCredential

		credential, err = azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, err
		}

		client, err = service.NewClient(cfg.Azure.AccountURL, credential, nil)
	}

	if err != nil {
		return nil, err
	}

	return objazure.NewClient(objazure.ClientOptions{Client: client, Logger: logger}), nil
}
