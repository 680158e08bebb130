// File: internal/flags/flags.go
package flags

// Centralized definitions for CLI flags used across the application.
// Flag names double as viper keys and, upper-cased with '-' replaced by '_',
// as WORMBUCKET_* environment variable suffixes.

const (
	// Connection flags identify the S3-compatible endpoint and the credentials passed through to it
	EndpointURL = "endpoint-url"
	AccessKey   = "access-key"
	SecretKey   = "secret-key"
	Region      = "region"

	// Insecure disables TLS certificate verification
	Insecure = "insecure"

	// Bucket is the name of the bucket to provision
	Bucket = "bucket"

	// Retention flags define the default Object Lock rule
	RetentionDays = "retention-days"
	RetentionMode = "retention-mode"

	// Output selects how the provisioning result is printed
	Output      = "output"
	OutputShort = "o"

	// Interactive asks for confirmation before anything is sent to the endpoint
	Interactive      = "interactive"
	InteractiveShort = "i"

	// Config points at an optional YAML or JSON file holding any of the above keys
	Config = "config"

	// Debug flags are used to enable verbose logging
	Debug      = "debug"
	DebugShort = "d"
)
