// File: pkg/storage/storage.go
package storage

import (
	"context"
	"wormbucket/pkg/common"
)

// Defines the bucket operations needed to provision a WORM bucket.
// Implementations issue exactly one remote call per method and never retry.
type WORMStorage interface {
	ProviderName() common.Provider

	// Creates the bucket with Object Lock enabled. Object Lock cannot be turned on later
	CreateLockedBucket(ctx context.Context, bucketName, region string) error

	EnableVersioning(ctx context.Context, bucketName string) error

	// Applies the bucket-wide default retention rule
	PutDefaultRetention(ctx context.Context, bucketName string, policy RetentionPolicy) error

	Close() error
}
