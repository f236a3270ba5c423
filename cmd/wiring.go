package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eykd/tokengen-go/internal/clipboard"
	"github.com/eykd/tokengen-go/internal/entropy"
	"github.com/eykd/tokengen-go/internal/logging"
)

// Deps holds the runners behind each command. Nil runners make their
// commands fail with a descriptive error instead of panicking.
type Deps struct {
	Generate GenerateRunner
	Profiles ProfilesRunner
	Init     InitRunner
}

// BuildCommandTree creates the root command with every subcommand
// registered against deps.
func BuildCommandTree(deps Deps) *cobra.Command {
	root := NewRootCmd()
	root.AddCommand(NewGenerateCmd(deps.Generate))
	root.AddCommand(NewStrengthCmd())
	root.AddCommand(NewClassesCmd())
	root.AddCommand(NewProfilesCmd(deps.Profiles))
	root.AddCommand(NewInitCmd(deps.Init))
	return root
}

// NewDeps wires the production runners. Debug logs go to stderr when
// --verbose is set.
func NewDeps(stderr io.Writer) Deps {
	settings := newSettingsLoader()
	return Deps{
		Generate: &generateAdapter{
			openSource: systemSource,
			settings:   settings,
			clip:       clipboard.System{},
			logger:     func() *slog.Logger { return logging.New(stderr, GetVerbose()) },
		},
		Profiles: &profilesAdapter{settings: settings},
		Init:     &initAdapter{settings: settings},
	}
}

func systemSource() (entropy.Source, error) {
	src, err := entropy.System()
	if err != nil {
		return nil, err
	}
	return src, nil
}
