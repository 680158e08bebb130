package aws

import (
	"context"
	"path/filepath"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// Keeps LoadDefaultConfig away from the developer's real AWS settings
func isolateSharedConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_MAX_ATTEMPTS", "")
	t.Setenv("AWS_RETRY_MODE", "")
}

func TestNewS3ClientOptions(t *testing.T) {
	isolateSharedConfig(t)

	tests := []struct {
		name     string
		opts     ClientOptions
		insecure bool
	}{
		{
			name: "tls_verified",
			opts: ClientOptions{
				EndpointURL: "https://flashblade.example.com",
				AccessKey:   "AKIAEXAMPLE",
				SecretKey:   "secret",
				Region:      "us-east-1",
			},
			insecure: false,
		},
		{
			name: "tls_insecure",
			opts: ClientOptions{
				EndpointURL: "https://10.0.0.5",
				AccessKey:   "AKIAEXAMPLE",
				SecretKey:   "secret",
				Region:      "eu-west-1",
				Insecure:    true,
			},
			insecure: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewS3Client(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("NewS3Client: %v", err)
			}

			o := client.Options()
			if !o.UsePathStyle {
				t.Errorf("UsePathStyle = false, want true")
			}
			if o.BaseEndpoint == nil || *o.BaseEndpoint != tt.opts.EndpointURL {
				t.Errorf("BaseEndpoint = %v, want %q", o.BaseEndpoint, tt.opts.EndpointURL)
			}
			if o.Region != tt.opts.Region {
				t.Errorf("Region = %q, want %q", o.Region, tt.opts.Region)
			}
			if got := o.Retryer.MaxAttempts(); got != 1 {
				t.Errorf("Retryer.MaxAttempts() = %d, want 1", got)
			}

			creds, err := o.Credentials.Retrieve(context.Background())
			if err != nil {
				t.Fatalf("retrieving credentials: %v", err)
			}
			if creds.AccessKeyID != tt.opts.AccessKey || creds.SecretAccessKey != tt.opts.SecretKey {
				t.Errorf("credentials = %q/%q, want %q/%q", creds.AccessKeyID, creds.SecretAccessKey, tt.opts.AccessKey, tt.opts.SecretKey)
			}

			buildable, ok := o.HTTPClient.(*awshttp.BuildableClient)
			if !ok {
				t.Fatalf("HTTPClient is %T, want *http.BuildableClient", o.HTTPClient)
			}
			tr := buildable.GetTransport()
			if tr.TLSClientConfig == nil {
				t.Fatal("TLSClientConfig is nil")
			}
			if tr.TLSClientConfig.InsecureSkipVerify != tt.insecure {
				t.Errorf("InsecureSkipVerify = %v, want %v", tr.TLSClientConfig.InsecureSkipVerify, tt.insecure)
			}
		})
	}
}

func TestNewHTTPClientTLS(t *testing.T) {
	if newHTTPClient(false).GetTransport().TLSClientConfig.InsecureSkipVerify {
		t.Fatal("verification should stay enabled by default")
	}
	if !newHTTPClient(true).GetTransport().TLSClientConfig.InsecureSkipVerify {
		t.Fatal("insecure client should skip verification")
	}
}
