// File: cmd/wormbucket/version_cmd.go
package main

import (
	"fmt"
	"wormbucket/internal/config"
	"wormbucket/internal/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wormbucket version",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &config.UsageError{Err: fmt.Errorf("version takes no arguments")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "wormbucket %s\n", version.Version)
			return nil
		},
	}
}
