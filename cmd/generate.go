package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/tokengen-go/internal/domain"
)

// GenerateRequest holds the generation options given on the command line.
// Nil Length and Classes mean the flag was not given.
type GenerateRequest struct {
	Profile string
	Length  *int
	Classes *domain.ClassSet
	Count   int
	Copy    bool
}

// GenerateResult holds the outcome of a generate operation.
type GenerateResult struct {
	Values       []string        `json:"values"`
	Length       int             `json:"length"`
	Classes      []string        `json:"classes"`
	AlphabetSize int             `json:"alphabet_size"`
	Strength     domain.Strength `json:"strength"`
	EntropyBits  float64         `json:"entropy_bits"`
	Profile      string          `json:"profile,omitempty"`
	Copied       bool            `json:"copied"`
}

// GenerateRunner defines the interface for running the generate operation.
type GenerateRunner interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// classFlags maps the boolean class flags to their classes.
var classFlags = []struct {
	name  string
	short string
	class domain.CharacterClass
	usage string
}{
	{"upper", "U", domain.Uppercase, "Include uppercase letters (A-Z)"},
	{"lower", "L", domain.Lowercase, "Include lowercase letters (a-z)"},
	{"digits", "D", domain.Digit, "Include digits (0-9)"},
	{"symbols", "S", domain.Symbol, "Include symbols (!@#$...)"},
}

// NewGenerateCmd creates the generate command with the given runner. A nil
// runner means no secure random source could be opened.
func NewGenerateCmd(runner GenerateRunner) *cobra.Command {
	var (
		length     int
		classList  []string
		count      int
		profile    string
		copyOut    bool
		quiet      bool
		jsonOutput bool
	)
	enabled := make([]bool, len(classFlags))

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate random strings",
		Long: `Generate random strings from the enabled character classes.

Without class flags the configured classes are used. Giving any of
--upper, --lower, --digits, --symbols or --classes replaces them with
exactly the classes named.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runner == nil {
				return fmt.Errorf("%w: generator not initialised", domain.ErrEntropyUnavailable)
			}

			req := GenerateRequest{Profile: profile, Count: count, Copy: copyOut}
			if cmd.Flags().Changed("length") {
				req.Length = &length
			}
			classes, explicit, err := explicitClasses(cmd, classList, enabled)
			if err != nil {
				return err
			}
			if explicit {
				req.Classes = &classes
			}

			// A result with an error means the strings were generated but
			// a later step such as --copy failed.
			result, err := runner.Generate(cmd.Context(), req)
			if result == nil {
				return err
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
				return err
			}
			writeGenerateHuman(cmd, result, quiet)
			return err
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "Number of characters per string (default from config, 16)")
	cmd.Flags().StringSliceVarP(&classList, "classes", "c", nil, "Comma-separated classes: uppercase, lowercase, digits, symbols")
	for i, f := range classFlags {
		cmd.Flags().BoolVarP(&enabled[i], f.name, f.short, false, f.usage)
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of strings to generate")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Named profile from the configuration")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the last generated string to the clipboard")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the generated strings")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// explicitClasses returns the union of --classes and the boolean class
// flags, and whether any of them was given. An explicitly empty selection
// is returned as the empty set so the generator can reject it.
func explicitClasses(cmd *cobra.Command, classList []string, enabled []bool) (domain.ClassSet, bool, error) {
	var set domain.ClassSet
	explicit := false

	if cmd.Flags().Changed("classes") {
		explicit = true
		parsed, err := domain.ParseClassSet(classList)
		if err != nil {
			return 0, false, err
		}
		set = parsed
	}
	for i, f := range classFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		explicit = true
		if enabled[i] {
			set = set.With(f.class)
		}
	}
	return set, explicit, nil
}

func writeGenerateHuman(cmd *cobra.Command, result *GenerateResult, quiet bool) {
	w := cmd.OutOrStdout()
	for _, v := range result.Values {
		fmt.Fprintln(w, v)
	}
	if quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Strength: %s (%d chars, %.1f bits)\n",
		renderStrength(cmd.ErrOrStderr(), result.Strength), result.Length, result.EntropyBits)
	if result.Copied {
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	}
}
