package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"wormbucket/internal/config"
	"wormbucket/pkg/common"
	"wormbucket/pkg/storage"
	"wormbucket/pkg/storage/aws"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRequest() *config.ProvisionRequest {
	return &config.ProvisionRequest{
		EndpointURL:   "https://flashblade.example.com",
		AccessKey:     "AKIAEXAMPLE",
		SecretKey:     "secret",
		Bucket:        "worm",
		Region:        "eu-west-1",
		RetentionDays: 30,
		RetentionMode: storage.Compliance,
		Insecure:      true,
	}
}

func TestClientOptionsFor(t *testing.T) {
	got := ClientOptionsFor(testRequest())
	want := aws.ClientOptions{
		EndpointURL: "https://flashblade.example.com",
		AccessKey:   "AKIAEXAMPLE",
		SecretKey:   "secret",
		Region:      "eu-west-1",
		Insecure:    true,
	}
	if got != want {
		t.Fatalf("ClientOptionsFor = %+v, want %+v", got, want)
	}
}

func TestGetStorageProviderPassesOptions(t *testing.T) {
	var seen aws.ClientOptions
	f := NewFactoryWithInitializer(func(ctx context.Context, opts aws.ClientOptions, logger *slog.Logger) (storage.WORMStorage, error) {
		seen = opts
		return nil, nil
	}, discardLogger())

	if _, err := f.GetStorageProvider(context.Background(), testRequest()); err != nil {
		t.Fatalf("GetStorageProvider: %v", err)
	}
	if seen != ClientOptionsFor(testRequest()) {
		t.Fatalf("initializer got %+v", seen)
	}
}

func TestGetStorageProviderWrapsInitializerError(t *testing.T) {
	boom := errors.New("boom")
	f := NewFactoryWithInitializer(func(ctx context.Context, opts aws.ClientOptions, logger *slog.Logger) (storage.WORMStorage, error) {
		return nil, boom
	}, discardLogger())

	_, err := f.GetStorageProvider(context.Background(), testRequest())
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped boom", err)
	}
}

func TestNewFactoryBuildsS3Client(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")

	client, err := NewFactory(discardLogger()).GetStorageProvider(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GetStorageProvider: %v", err)
	}
	defer client.Close()

	if client.ProviderName() != common.S3 {
		t.Fatalf("ProviderName = %q, want %q", client.ProviderName(), common.S3)
	}
}
