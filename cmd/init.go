package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// InitResult holds the outcome of writing a configuration file.
type InitResult struct {
	Path        string `json:"path"`
	Overwritten bool   `json:"overwritten"`
}

// InitRunner defines the interface for writing the default configuration.
type InitRunner interface {
	Init(ctx context.Context, force bool) (*InitResult, error)
}

// NewInitCmd creates the init command with the given runner.
func NewInitCmd(runner InitRunner) *cobra.Command {
	var force bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a default configuration file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runner == nil {
				return ErrNoConfig
			}
			result, err := runner.Init(cmd.Context(), force)
			if err != nil {
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
