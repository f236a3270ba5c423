// Package generator provides the application service that turns a
// generation request into secure random strings.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eykd/tokengen-go/internal/domain"
	"github.com/eykd/tokengen-go/internal/entropy"
	"github.com/eykd/tokengen-go/internal/sampler"
)

// Service generates strings by sampling an alphabet with a secure source.
// It keeps no per-request state, so one Service may serve concurrent calls
// when its source is safe for concurrent use.
type Service struct {
	src    entropy.Source
	logger *slog.Logger
}

// NewService creates a Service drawing from src. A nil logger discards
// diagnostics.
func NewService(src entropy.Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{src: src, logger: logger}
}

// Generate returns a string of cfg.Length characters, each drawn
// independently and uniformly from the alphabet of cfg.Classes.
//
// It fails with domain.ErrEmptyCharset when no class is enabled and with
// domain.ErrInvalidLength when the length is below one. Source failures
// match domain.ErrEntropyUnavailable.
func (s *Service) Generate(ctx context.Context, cfg domain.GenerationConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	alphabet := domain.BuildAlphabet(cfg.Classes)
	value, err := s.sample(alphabet, cfg.Length)
	if err != nil {
		return "", err
	}

	s.logger.DebugContext(ctx, "generated string",
		"length", cfg.Length,
		"alphabet_size", alphabet.Len(),
		"classes", cfg.Classes.String(),
	)
	return value, nil
}

// GenerateBatch returns count independent strings for the same config.
// It fails with domain.ErrInvalidCount when count is below one or the batch
// exceeds the domain size limits.
func (s *Service) GenerateBatch(ctx context.Context, cfg domain.GenerationConfig, count int) ([]string, error) {
	if err := cfg.ValidateCount(count); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	alphabet := domain.BuildAlphabet(cfg.Classes)
	values := make([]string, count)
	for i := range values {
		v, err := s.sample(alphabet, cfg.Length)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	s.logger.DebugContext(ctx, "generated strings",
		"count", count,
		"length", cfg.Length,
		"alphabet_size", alphabet.Len(),
		"classes", cfg.Classes.String(),
	)
	return values, nil
}

func (s *Service) sample(alphabet domain.Alphabet, length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := sampler.Next(s.src, alphabet.Len())
		if err != nil {
			return "", fmt.Errorf("sampling position %d: %w", i, err)
		}
		b.WriteByte(alphabet.At(idx))
	}
	return b.String(), nil
}
