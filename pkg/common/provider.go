// File: pkg/common/provider.go
package common

type Provider string

const (
	// S3 covers AWS itself and any endpoint speaking the S3 REST API (FlashBlade, MinIO, ...)
	S3 Provider = "S3"
)
