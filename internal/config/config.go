// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"wormbucket/internal/flags"
	"wormbucket/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "WORMBUCKET"

	DefaultRetentionDays int32 = 30
	DefaultRetentionMode       = storage.Compliance
	DefaultOutput              = "text"
)

// Supported values for --output
var OutputFormats = []string{"text", "table", "yaml", "json"}

// The validated input of a single provisioning run. Nothing here is persisted
type ProvisionRequest struct {
	EndpointURL   string                `mapstructure:"endpoint-url" validate:"required,url"`
	AccessKey     string                `mapstructure:"access-key" validate:"required"`
	SecretKey     string                `mapstructure:"secret-key" validate:"required"`
	Bucket        string                `mapstructure:"bucket" validate:"required"`
	Region        string                `mapstructure:"region" validate:"required"`
	RetentionDays int32                 `mapstructure:"retention-days"`
	RetentionMode storage.RetentionMode `mapstructure:"retention-mode" validate:"required,oneof=COMPLIANCE GOVERNANCE"`
	Insecure      bool                  `mapstructure:"insecure"`
	Output        string                `mapstructure:"output" validate:"oneof=text table yaml json"`
	Interactive   bool                  `mapstructure:"interactive"`
	Debug         bool                  `mapstructure:"debug"`
}

func (r *ProvisionRequest) RetentionPolicy() storage.RetentionPolicy {
	return storage.RetentionPolicy{
		Mode: r.RetentionMode,
		Days: r.RetentionDays,
	}
}

// Marks a problem with the command line or configuration input.
// It is always detected before any request is sent to the endpoint.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// Registers the provisioning flags with their defaults on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flags.EndpointURL, "", "S3 endpoint URL (required)")
	fs.String(flags.AccessKey, "", "S3 access key (required)")
	fs.String(flags.SecretKey, "", "S3 secret key (required)")
	fs.String(flags.Bucket, "", "Bucket name to create (required)")
	fs.String(flags.Region, storage.DefaultRegion, "S3 region name")
	fs.Int32(flags.RetentionDays, DefaultRetentionDays, "Default object retention in days")
	fs.String(flags.RetentionMode, string(DefaultRetentionMode), "Object Lock mode (COMPLIANCE|GOVERNANCE)")
	fs.Bool(flags.Insecure, false, "Disable TLS certificate verification")
	fs.StringP(flags.Output, flags.OutputShort, DefaultOutput, "Output format ("+strings.Join(OutputFormats, "|")+")")
	fs.BoolP(flags.Interactive, flags.InteractiveShort, false, "Ask for confirmation before provisioning")
	fs.BoolP(flags.Debug, flags.DebugShort, false, "Enable debug logging")
	fs.String(flags.Config, "", "Optional YAML or JSON file with flag values")
}

// Merges flags, WORMBUCKET_* environment variables and an optional config
// file into a ProvisionRequest. Precedence follows viper: explicitly set
// flags, then environment, then the config file, then flag defaults.
type Loader struct {
	v        *viper.Viper
	validate *validator.Validate
}

func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report the flag name instead of the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Loader{
		v:        v,
		validate: validate,
	}
}

func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	if err := l.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	return nil
}

// The config file path itself comes through viper, so --config and
// WORMBUCKET_CONFIG are both honored.
func (l *Loader) Load() (*ProvisionRequest, error) {
	if configFile := l.v.GetString(flags.Config); configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &UsageError{Err: fmt.Errorf("error reading config file: %w", err)}
		}
	}

	var req ProvisionRequest
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToRetentionModeHook(),
	))
	if err := l.v.Unmarshal(&req, hook); err != nil {
		return nil, &UsageError{Err: fmt.Errorf("error parsing arguments: %w", err)}
	}

	if err := l.validate.Struct(&req); err != nil {
		return nil, &UsageError{Err: describeValidationError(err)}
	}

	return &req, nil
}

func stringToRetentionModeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(storage.RetentionMode("")) {
			return data, nil
		}
		s, _ := data.(string)
		if s == "" {
			// Let the required rule report it
			return storage.RetentionMode(""), nil
		}
		mode, err := storage.ParseRetentionMode(s)
		if err != nil {
			return nil, err
		}
		return mode, nil
	}
}

// Turns validator output into a message phrased in terms of flags
func describeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("required flag --%s not set", fe.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("invalid value %q for --%s: must be one of %s", fe.Value(), fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "url":
			messages = append(messages, fmt.Sprintf("invalid value %q for --%s: must be an absolute URL", fe.Value(), fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("invalid value for --%s (%s)", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
