// File: cmd/wormbucket/app.go
package main

import (
	"io"
	"log/slog"
	"wormbucket/internal/config"
	"wormbucket/internal/logger"
	"wormbucket/internal/provider/factory"
	"wormbucket/internal/service"
	"wormbucket/internal/ui/prompt"
	"wormbucket/pkg/formatter"
)

// appContainer holds all the shared dependencies for the application
type appContainer struct {
	ConfigLoader        *config.Loader
	ProviderFactory     *factory.Factory
	ProvisioningService *service.ProvisioningService
	ProvisionFormatter  *formatter.ProvisionFormatter
	NewPrompter         func(out io.Writer) prompt.Prompter
	Logger              *slog.Logger
	LogLevel            *slog.LevelVar
}

// Creates and initializes a new application container. A nil initializer
// selects the real S3 client
func newApp(in io.Reader, errOut io.Writer, initializer factory.StorageInitializer) *appContainer {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	log := logger.NewLogger(errOut, logLevel)

	providerFactory := factory.NewFactory(log)
	if initializer != nil {
		providerFactory = factory.NewFactoryWithInitializer(initializer, log)
	}

	return &appContainer{
		ConfigLoader:        config.NewLoader(),
		ProviderFactory:     providerFactory,
		ProvisioningService: service.NewProvisioningService(providerFactory, log),
		ProvisionFormatter:  formatter.NewProvisionFormatter(),
		Logger:              log,
		LogLevel:            logLevel,
		NewPrompter: func(out io.Writer) prompt.Prompter {
			return prompt.NewStandardPrompter(in, out)
		},
	}
}
