package namegen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wyrdbound/wyrdbound-rng/internal/analysis"
	"github.com/wyrdbound/wyrdbound-rng/internal/syllables"
)

// Algorithm selects a generation strategy
type Algorithm string

const (
	VerySimple Algorithm = "very_simple"
	Simple     Algorithm = "simple"
	Bayesian   Algorithm = "bayesian"
)

// Algorithms lists every supported algorithm
var Algorithms = []Algorithm{VerySimple, Simple, Bayesian}

// ParseAlgorithm resolves an algorithm name. Case is ignored and hyphens
// are accepted in place of underscores.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

const (
	// DefaultMinProbability is the Bayesian acceptance threshold
	DefaultMinProbability = 1e-8
	// DefaultMaxAttempts bounds the retries of a single generation
	DefaultMaxAttempts = 200
	// DefaultSegmentCache is the number of segmentations memoized per Generator
	DefaultSegmentCache = 4096
)

// GenerateOptions configures a single generation.
type GenerateOptions struct {
	// MaxLen is the maximum name length in characters. Required.
	MaxLen int
	// Algorithm defaults to Simple.
	Algorithm Algorithm
	// MinProbability is the Bayesian acceptance threshold. Nil selects
	// DefaultMinProbability and zero accepts every candidate. Ignored by the
	// other algorithms.
	MinProbability *float64
	// Seed makes the result reproducible. Zero draws a random seed.
	Seed int64
}

func (o GenerateOptions) normalize() (GenerateOptions, error) {
	if o.MaxLen < 1 {
		return o, fmt.Errorf("%w: max length must be at least 1, got %d", ErrInvalidOptions, o.MaxLen)
	}
	if o.MinProbability == nil {
		o.MinProbability = Threshold(DefaultMinProbability)
	}
	if p := *o.MinProbability; p < 0 || p > 1 {
		return o, fmt.Errorf("%w: min probability must be within [0, 1], got %g", ErrInvalidOptions, p)
	}
	if o.Algorithm == "" {
		o.Algorithm = Simple
	}
	return o, nil
}

// Threshold returns p for use as GenerateOptions.MinProbability
func Threshold(p float64) *float64 {
	return &p
}

// Option configures a Generator
type Option func(*settings)

type settings struct {
	kind        string
	segmenter   syllables.Segmenter
	logger      *slog.Logger
	alpha       float64
	maxAttempts int
	cacheSize   int
}

func defaultSettings() *settings {
	return &settings{
		kind:        string(syllables.KindFantasy),
		alpha:       analysis.DefaultSmoothing,
		maxAttempts: DefaultMaxAttempts,
		cacheSize:   DefaultSegmentCache,
	}
}

// WithSegmenter selects a registered segmenter by name ("fantasy", "japanese")
func WithSegmenter(name string) Option {
	return func(s *settings) { s.kind = name }
}

// WithSegmenterImpl uses a custom segmenter instead of a registered one
func WithSegmenterImpl(seg syllables.Segmenter) Option {
	return func(s *settings) {
		if seg != nil {
			s.segmenter = seg
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSmoothing sets the additive smoothing constant of the transition model
func WithSmoothing(alpha float64) Option {
	return func(s *settings) {
		if alpha >= 0 {
			s.alpha = alpha
		}
	}
}

// WithMaxAttempts bounds how many candidates a generation may try
func WithMaxAttempts(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithSegmentCache sets the segmentation cache size. Zero disables caching.
func WithSegmentCache(size int) Option {
	return func(s *settings) {
		if size >= 0 {
			s.cacheSize = size
		}
	}
}
