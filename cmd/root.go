// Package cmd contains the CLI commands for the tkg application.
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// verbose holds the global --verbose flag state.
var verbose bool

// jsonFlag holds the global --json flag state.
var jsonFlag bool

// configPath holds the global --config flag state.
var configPath string

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON returns the current global JSON flag state.
func GetJSON() bool {
	return jsonFlag
}

// GetConfigPath returns the --config flag value, or "" when unset.
func GetConfigPath() string {
	return configPath
}

// NewRootCmd creates a new root command instance without subcommands.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tkg",
		Short:         "Generate secure random passwords, API keys and tokens",
		Long:          "tkg generates random strings from a configurable alphabet using the operating system's secure random source.",
		SilenceErrors: true,
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default $XDG_CONFIG_HOME/tkg/config.yaml)")

	return cmd
}

// Main wires the production dependencies, runs args and returns the
// process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := BuildCommandTree(NewDeps(stderr))
	return RunCLIContext(ctx, root, args, stdout, stderr)
}
