// Package entropy adapts cryptographically secure byte streams into the
// fixed-width words consumed by the sampler.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/eykd/tokengen-go/internal/domain"
)

// WordBits is the width of every word returned by a Source.
const WordBits = 32

// Source yields uniformly distributed 32-bit words from a secure stream.
type Source interface {
	Uint32() (uint32, error)
}

// Reader turns an io.Reader into a Source, reading four bytes per word.
// It is safe for concurrent use when the underlying reader is.
type Reader struct {
	r io.Reader
}

// NewReader wraps r. The caller is responsible for r being a secure
// stream; System returns the operating system's.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// System returns a Source backed by crypto/rand. It performs a probe read
// and fails with domain.ErrEntropyUnavailable if the operating system
// source cannot be read.
func System() (*Reader, error) {
	src := NewReader(rand.Reader)
	if _, err := src.Uint32(); err != nil {
		return nil, err
	}
	return src, nil
}

// Uint32 reads the next big-endian word. A short or failed read is
// reported as domain.ErrEntropyUnavailable wrapping the cause.
func (s *Reader) Uint32() (uint32, error) {
	var buf [WordBits / 8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: reading random word: %w", domain.ErrEntropyUnavailable, err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
