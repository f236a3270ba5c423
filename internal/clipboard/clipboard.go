// Package clipboard copies generated values to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, for
// example on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard not available on this system")

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the operating system clipboard.
type System struct{}

// WriteAll replaces the clipboard contents with text.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
