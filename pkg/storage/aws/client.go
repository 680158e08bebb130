// File: pkg/storage/aws/client.go
package aws

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"wormbucket/pkg/common"
	"wormbucket/pkg/storage"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Holds everything needed to talk to one S3-compatible endpoint
type ClientOptions struct {
	EndpointURL string
	AccessKey   string
	SecretKey   string
	Region      string
	// Disables TLS certificate verification
	Insecure bool
}

// The subset of *s3.Client used for provisioning
type bucketAPI interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutBucketVersioning(ctx context.Context, params *s3.PutBucketVersioningInput, optFns ...func(*s3.Options)) (*s3.PutBucketVersioningOutput, error)
	PutObjectLockConfiguration(ctx context.Context, params *s3.PutObjectLockConfigurationInput, optFns ...func(*s3.Options)) (*s3.PutObjectLockConfigurationOutput, error)
}

var _ bucketAPI = (*s3.Client)(nil)

type AWSStorage struct {
	client bucketAPI
	logger *slog.Logger
}

var _ storage.WORMStorage = (*AWSStorage)(nil)

// Builds the S3 client and wraps it. No request is sent until an operation is called
func NewAWSStorage(ctx context.Context, opts ClientOptions, logger *slog.Logger) (*AWSStorage, error) {
	client, err := NewS3Client(ctx, opts)
	if err != nil {
		return nil, err
	}

	return newAWSStorage(client, opts.EndpointURL, logger), nil
}

func newAWSStorage(client bucketAPI, endpoint string, logger *slog.Logger) *AWSStorage {
	return &AWSStorage{
		client: client,
		logger: logger.With("provider", common.S3, "endpoint", endpoint),
	}
}

// Constructs an S3 client bound to the endpoint with path-style addressing.
// Credentials are taken from opts only, and the SDK retryer is replaced so
// every operation is attempted exactly once.
func NewS3Client(ctx context.Context, opts ClientOptions) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
		awsconfig.WithHTTPClient(newHTTPClient(opts.Insecure)),
		awsconfig.WithRetryer(func() awssdk.Retryer {
			return awssdk.NopRetryer{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = awssdk.String(opts.EndpointURL)
		// Most non-AWS endpoints (FlashBlade, MinIO) only resolve buckets in the path
		o.UsePathStyle = true
		// Flexible checksums are not understood by every S3-compatible implementation
		o.RequestChecksumCalculation = awssdk.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = awssdk.ResponseChecksumValidationWhenRequired
	})

	return client, nil
}

func newHTTPClient(insecure bool) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		tr.TLSClientConfig.InsecureSkipVerify = insecure
	})
}

func (s *AWSStorage) ProviderName() common.Provider {
	return common.S3
}

func (s *AWSStorage) Close() error {
	// The SDK client holds no resources that need releasing
	return nil
}
