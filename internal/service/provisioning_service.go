// File: internal/service/provisioning_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"wormbucket/internal/config"
	"wormbucket/internal/provider/factory"
	"wormbucket/pkg/storage"
)

// Names of the provisioning steps, in execution order
const (
	StepCreateBucket     = "create-bucket"
	StepEnableVersioning = "enable-versioning"
	StepDefaultRetention = "default-retention"
)

type ProvisioningService struct {
	providerFactory *factory.Factory
	logger          *slog.Logger
}

func NewProvisioningService(providerFactory *factory.Factory, logger *slog.Logger) *ProvisioningService {
	return &ProvisioningService{
		providerFactory: providerFactory,
		logger:          logger.With("service", "ProvisioningService"),
	}
}

// Creates the bucket with Object Lock, enables versioning and applies the
// default retention rule, in that order. The first failure stops the
// sequence; a bucket created before the failure is left in place.
func (s *ProvisioningService) ProvisionWORMBucket(ctx context.Context, req *config.ProvisionRequest) (storage.ProvisionResult, error) {
	s.logger.Debug("Starting ProvisionWORMBucket operation", "bucket", req.Bucket, "endpoint", req.EndpointURL, "region", req.Region)

	client, err := s.getStorageClient(ctx, req)
	if err != nil {
		return storage.ProvisionResult{}, err
	}
	defer client.Close()

	policy := req.RetentionPolicy()

	steps := []struct {
		name string
		run  func() error
	}{
		// Object Lock can only be switched on while the bucket is being created
		{StepCreateBucket, func() error { return client.CreateLockedBucket(ctx, req.Bucket, req.Region) }},
		// The provider refuses a retention configuration on an unversioned bucket
		{StepEnableVersioning, func() error { return client.EnableVersioning(ctx, req.Bucket) }},
		{StepDefaultRetention, func() error { return client.PutDefaultRetention(ctx, req.Bucket, policy) }},
	}

	for _, step := range steps {
		s.logger.Debug("Running provisioning step", "bucket", req.Bucket, "step", step.name)
		if err := step.run(); err != nil {
			s.logger.Error("Provisioning step failed", "bucket", req.Bucket, "step", step.name, "error", err)
			return storage.ProvisionResult{}, err
		}
	}

	s.logger.Debug("Bucket provisioned", "bucket", req.Bucket, "mode", policy.Mode, "days", policy.Days)

	return storage.ProvisionResult{
		Bucket:             req.Bucket,
		Provider:           client.ProviderName(),
		Endpoint:           req.EndpointURL,
		Region:             req.Region,
		LocationConstraint: storage.NeedsLocationConstraint(req.Region),
		VersioningEnabled:  true,
		RetentionMode:      policy.Mode,
		RetentionDays:      policy.Days,
	}, nil
}

// Helper to initialize the storage client and handle common error logging
func (s *ProvisioningService) getStorageClient(ctx context.Context, req *config.ProvisionRequest) (storage.WORMStorage, error) {
	client, err := s.providerFactory.GetStorageProvider(ctx, req)
	if err != nil {
		s.logger.Error("Failed to initialize provider", "endpoint", req.EndpointURL, "error", err)
		return nil, fmt.Errorf("error initializing provider: %w", err)
	}
	return client, nil
}
