// Package sampler draws uniformly distributed indices from an entropy
// source without modulo bias.
package sampler

import (
	"errors"
	"fmt"

	"github.com/eykd/tokengen-go/internal/entropy"
)

// MaxBound is the largest upper bound Next accepts: every value of a
// 32-bit word.
const MaxBound = 1 << entropy.WordBits

// ErrInvalidBound is returned when the upper bound is below 1 or above
// MaxBound.
var ErrInvalidBound = errors.New("sampler bound out of range")

// Limit returns the rejection threshold for bound n: the largest multiple
// of n not exceeding 2^32. Words at or above it are redrawn.
func Limit(n int) uint64 {
	const span = uint64(MaxBound)
	return span - span%uint64(n)
}

// Next returns an integer in [0, n) with every value equally likely.
// Words at or above Limit(n) are discarded and redrawn; the loop has no
// retry cap, so the distribution is never truncated.
func Next(src entropy.Source, n int) (int, error) {
	if n < 1 || uint64(n) > MaxBound {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBound, n)
	}

	limit := Limit(n)
	for {
		w, err := src.Uint32()
		if err != nil {
			return 0, err
		}
		v := uint64(w)
		if v >= limit {
			continue
		}
		return int(v % uint64(n)), nil
	}
}
