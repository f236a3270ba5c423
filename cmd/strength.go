package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eykd/tokengen-go/internal/domain"
)

// StrengthResult holds the outcome of the strength command.
type StrengthResult struct {
	Length      int             `json:"length"`
	Strength    domain.Strength `json:"strength"`
	EntropyBits *float64        `json:"entropy_bits,omitempty"`
}

// NewStrengthCmd creates the strength command. The label depends on the
// length alone; --classes adds the alphabet-aware entropy estimate.
func NewStrengthCmd() *cobra.Command {
	var jsonOutput bool
	var classList []string

	cmd := &cobra.Command{
		Use:          "strength <length>",
		Short:        "Show the strength label for a length",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: length %q is not an integer", ErrInvalidArgument, args[0])
			}

			result := StrengthResult{Length: length, Strength: domain.Classify(length)}
			if cmd.Flags().Changed("classes") {
				classes, err := domain.ParseClassSet(classList)
				if err != nil {
					return err
				}
				bits := domain.EntropyBits(length, domain.BuildAlphabet(classes).Len())
				result.EntropyBits = &bits
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
				return nil
			}
			w := cmd.OutOrStdout()
			if result.EntropyBits != nil {
				fmt.Fprintf(w, "%s (%.1f bits)\n", renderStrength(w, result.Strength), *result.EntropyBits)
			} else {
				fmt.Fprintln(w, renderStrength(w, result.Strength))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringSliceVarP(&classList, "classes", "c", nil, "Classes to estimate entropy for")

	return cmd
}
