package domain

import "errors"

// ErrEmptyCharset is returned when a generation request enables no
// character class.
var ErrEmptyCharset = errors.New("no character class selected")

// ErrInvalidLength is returned when a generation request asks for fewer than
// one character or more than MaxLength.
var ErrInvalidLength = errors.New("invalid length")

// ErrInvalidCount is returned when a batch request asks for fewer than one
// string, more than MaxCount, or more than MaxBatchChars in total.
var ErrInvalidCount = errors.New("invalid count")

// ErrUnknownClass is returned when a character class name cannot be parsed.
var ErrUnknownClass = errors.New("unknown character class")

// ErrEntropyUnavailable is returned when no cryptographically secure random
// source can be read. It is not user-correctable.
var ErrEntropyUnavailable = errors.New("secure random source unavailable")
