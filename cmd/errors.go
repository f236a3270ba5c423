package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/tokengen-go/internal/config"
	"github.com/eykd/tokengen-go/internal/domain"
)

// Exit codes returned by RunCLI.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnavailable = 3
)

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// usageErrors are corrected by changing the request and retrying.
var usageErrors = []error{
	domain.ErrEmptyCharset,
	domain.ErrInvalidLength,
	domain.ErrInvalidCount,
	domain.ErrUnknownClass,
	config.ErrUnknownProfile,
	ErrInvalidArgument,
}

// ErrInvalidArgument is returned when a positional argument cannot be parsed.
var ErrInvalidArgument = errors.New("invalid argument")

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, an unavailable entropy
// source returns 3, user-correctable request errors return 2, and all
// others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if errors.Is(err, domain.ErrEntropyUnavailable) {
		return ExitUnavailable
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return ExitUsage
		}
	}
	return ExitFailure
}

// FormatError formats an error with the "tkg: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("tkg: %s\n", err.Error())
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the appropriate exit code.
func RunCLI(cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	return RunCLIContext(context.Background(), cmd, args, stdout, stderr)
}

// RunCLIContext is RunCLI with a caller-supplied context.
func RunCLIContext(ctx context.Context, cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return ExitCodeFromError(err)
	}
	return ExitOK
}
