package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ErrNoConfig is returned by configuration commands when no configuration
// location could be determined.
var ErrNoConfig = errors.New("no configuration location available")

// ProfileInfo describes one configured profile.
type ProfileInfo struct {
	Name    string   `json:"name"`
	Length  int      `json:"length"`
	Classes []string `json:"classes"`
}

// ProfilesResult holds the outcome of listing profiles.
type ProfilesResult struct {
	Path     string        `json:"path"`
	Found    bool          `json:"found"`
	Profiles []ProfileInfo `json:"profiles"`
}

// ProfilesRunner defines the interface for listing profiles.
type ProfilesRunner interface {
	Profiles(ctx context.Context) (*ProfilesResult, error)
}

// NewProfilesCmd creates the profiles command with the given runner.
func NewProfilesCmd(runner ProfilesRunner) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "profiles",
		Short:        "List the configured generation profiles",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runner == nil {
				return ErrNoConfig
			}
			result, err := runner.Profiles(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
				return nil
			}
			if !result.Found {
				fmt.Fprintf(cmd.ErrOrStderr(), "No configuration at %s; showing built-in profiles\n", result.Path)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range result.Profiles {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Name, p.Length, strings.Join(p.Classes, ","))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
