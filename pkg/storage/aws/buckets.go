// File: pkg/storage/aws/buckets.go
package aws

import (
	"context"
	"fmt"
	"wormbucket/pkg/storage"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func (s *AWSStorage) CreateLockedBucket(ctx context.Context, bucketName, region string) error {
	s.logger.Debug("Sending CreateBucket", "bucket", bucketName, "region", region)

	input := &s3.CreateBucketInput{
		Bucket:                     awssdk.String(bucketName),
		ObjectLockEnabledForBucket: awssdk.Bool(true),
	}
	// Some providers reject an explicit constraint naming the default region
	if storage.NeedsLocationConstraint(region) {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	if _, err := s.client.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("creating bucket: %w", err)
	}
	return nil
}

func (s *AWSStorage) EnableVersioning(ctx context.Context, bucketName string) error {
	s.logger.Debug("Sending PutBucketVersioning", "bucket", bucketName)

	_, err := s.client.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: awssdk.String(bucketName),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return fmt.Errorf("enabling versioning: %w", err)
	}
	return nil
}

func (s *AWSStorage) PutDefaultRetention(ctx context.Context, bucketName string, policy storage.RetentionPolicy) error {
	s.logger.Debug("Sending PutObjectLockConfiguration", "bucket", bucketName, "mode", policy.Mode, "days", policy.Days)

	_, err := s.client.PutObjectLockConfiguration(ctx, &s3.PutObjectLockConfigurationInput{
		Bucket: awssdk.String(bucketName),
		ObjectLockConfiguration: &types.ObjectLockConfiguration{
			ObjectLockEnabled: types.ObjectLockEnabledEnabled,
			Rule: &types.ObjectLockRule{
				DefaultRetention: &types.DefaultRetention{
					Mode: types.ObjectLockRetentionMode(policy.Mode),
					Days: awssdk.Int32(policy.Days),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("applying default retention: %w", err)
	}
	return nil
}
