// File: internal/provider/factory/factory.go
package factory

import (
	"context"
	"fmt"
	"log/slog"
	"wormbucket/internal/config"
	"wormbucket/pkg/storage"
	"wormbucket/pkg/storage/aws"
)

// Defines the function signature for creating a storage client bound to one endpoint
type StorageInitializer func(ctx context.Context, opts aws.ClientOptions, logger *slog.Logger) (storage.WORMStorage, error)

type Factory struct {
	initializer StorageInitializer
	logger      *slog.Logger
}

// Creates a factory producing S3 clients
func NewFactory(logger *slog.Logger) *Factory {
	return NewFactoryWithInitializer(initializeS3, logger)
}

// Creates a factory using a custom initializer (tests substitute fakes here)
func NewFactoryWithInitializer(initializer StorageInitializer, logger *slog.Logger) *Factory {
	return &Factory{
		initializer: initializer,
		logger:      logger,
	}
}

func initializeS3(ctx context.Context, opts aws.ClientOptions, logger *slog.Logger) (storage.WORMStorage, error) {
	client, err := aws.NewAWSStorage(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Maps a provisioning request onto client options
func ClientOptionsFor(req *config.ProvisionRequest) aws.ClientOptions {
	return aws.ClientOptions{
		EndpointURL: req.EndpointURL,
		AccessKey:   req.AccessKey,
		SecretKey:   req.SecretKey,
		Region:      req.Region,
		Insecure:    req.Insecure,
	}
}

// Initializes the storage client for the request's endpoint. No request is sent
func (f *Factory) GetStorageProvider(ctx context.Context, req *config.ProvisionRequest) (storage.WORMStorage, error) {
	opts := ClientOptionsFor(req)
	if opts.Insecure {
		f.logger.Warn("TLS certificate verification is disabled", "endpoint", opts.EndpointURL)
	}

	client, err := f.initializer(ctx, opts, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client for %s: %w", opts.EndpointURL, err)
	}

	return client, nil
}
