// File: cmd/wormbucket/root.go
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"wormbucket/internal/config"
	"wormbucket/pkg/storage/aws"

	"github.com/spf13/cobra"
)

const (
	exitOK         = 0
	exitAPIError   = 1
	exitUsage      = 2
	exitUnexpected = 3
)

func newRootCmd(app *appContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wormbucket",
		Short: "Create an S3 Object Lock (WORM) bucket and apply a default retention policy.",
		Long: `Creates a bucket with Object Lock enabled on any S3-compatible endpoint
(AWS, Pure Storage FlashBlade, MinIO, ...), enables versioning on it and
applies a default retention rule. Requests use path-style addressing.

Every flag can also be supplied as a WORMBUCKET_* environment variable
(e.g. WORMBUCKET_SECRET_KEY) or as a key in the file given with --config.`,
		Example: `  wormbucket --endpoint-url https://flashblade.example.com \
    --access-key AKIA... --secret-key ... --bucket audit-logs \
    --retention-mode GOVERNANCE --retention-days 7`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &config.UsageError{Err: fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return app.ConfigLoader.BindFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd, app)
		},
	}

	config.RegisterFlags(rootCmd.Flags())

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &config.UsageError{Err: err}
	})

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runProvision(cmd *cobra.Command, app *appContainer) error {
	req, err := app.ConfigLoader.Load()
	if err != nil {
		return err
	}

	if req.Debug {
		app.LogLevel.Set(slog.LevelDebug)
	}

	if req.Interactive {
		message := fmt.Sprintf("Bucket '%s' will be created on %s with %s retention of %d days. Objects cannot be deleted or overwritten until their retention expires.",
			req.Bucket, req.EndpointURL, req.RetentionMode, req.RetentionDays)
		// Keep stdout parseable when it carries yaml or json
		promptOut := cmd.OutOrStdout()
		if req.Output != config.DefaultOutput {
			promptOut = cmd.ErrOrStderr()
		}
		confirmed, err := app.NewPrompter(promptOut).Confirm(message, req.Bucket)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(promptOut, "Aborted.")
			return nil
		}
	}

	result, err := app.ProvisioningService.ProvisionWORMBucket(cmd.Context(), req)
	if err != nil {
		return err
	}

	out, err := app.ProvisionFormatter.Format(result, req.Output)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// Runs the CLI and maps the outcome to a process exit code. Provider errors
// are the only expected failure at run time; anything else is reported as
// unexpected.
func execute(ctx context.Context, app *appContainer, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	executed, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}
	if executed == nil {
		executed = rootCmd
	}

	switch {
	case config.IsUsageError(err):
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, executed.UsageString())
		return exitUsage
	case aws.IsAPIError(err):
		app.Logger.Debug("Provider rejected request", "code", aws.APIErrorCode(err))
		fmt.Fprintf(stderr, "Failed to create WORM bucket: %v\n", err)
		return exitAPIError
	default:
		app.Logger.Debug("Unexpected failure", "error_type", fmt.Sprintf("%T", err))
		fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
		return exitUnexpected
	}
}
