// File: pkg/storage/aws/errors.go
package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Reports whether err carries an error returned by the storage provider itself,
// as opposed to a transport, credential, or local failure
func IsAPIError(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

// Returns the provider error code, or "" if err is not a provider error
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
