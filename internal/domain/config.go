// Package domain holds the character classes, alphabets and strength rules
// shared by every layer of tkg. It imports nothing outside the standard
// library.
package domain

import (
	"errors"
	"fmt"
)

// Request size limits. Larger values are rejected before any memory is
// allocated for the result.
const (
	MaxLength     = 1 << 16
	MaxCount      = 1 << 16
	MaxBatchChars = 1 << 24
)

// GenerationConfig describes a single generation request.
type GenerationConfig struct {
	Length  int
	Classes ClassSet
}

// Validate reports whether the config can be generated. An empty class set
// fails with ErrEmptyCharset for every length; a length below one fails with
// ErrInvalidLength, as does a length above MaxLength. When both apply the
// returned error matches both.
func (c GenerationConfig) Validate() error {
	var errs []error
	if c.Classes.IsEmpty() {
		errs = append(errs, ErrEmptyCharset)
	}
	switch {
	case c.Length < 1:
		errs = append(errs, fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidLength, c.Length))
	case c.Length > MaxLength:
		errs = append(errs, fmt.Errorf("%w: must be at most %d, got %d", ErrInvalidLength, MaxLength, c.Length))
	}
	return errors.Join(errs...)
}

// ValidateCount reports whether count strings of this config may be
// generated in one batch. Lengths outside [1, MaxLength] are left to
// Validate.
func (c GenerationConfig) ValidateCount(count int) error {
	switch {
	case count < 1:
		return fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidCount, count)
	case count > MaxCount:
		return fmt.Errorf("%w: must be at most %d, got %d", ErrInvalidCount, MaxCount, count)
	case c.Length > 0 && c.Length <= MaxLength && int64(count)*int64(c.Length) > MaxBatchChars:
		return fmt.Errorf("%w: %d strings of length %d exceed %d characters", ErrInvalidCount, count, c.Length, MaxBatchChars)
	}
	return nil
}
