package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eykd/tokengen-go/internal/domain"
)

// ClassInfo describes one character class.
type ClassInfo struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Chars string `json:"chars"`
}

// NewClassesCmd creates the classes command, which lists every character
// class in canonical order.
func NewClassesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "classes",
		Short:        "List the available character classes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]ClassInfo, len(domain.AllClasses))
			for i, c := range domain.AllClasses {
				infos[i] = ClassInfo{Name: c.String(), Size: len(c.Chars()), Chars: c.Chars()}
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), infos)
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", info.Name, info.Size, info.Chars)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
