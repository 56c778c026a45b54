package namegen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned when an algorithm name is not recognized
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrGenerationExhausted is returned when no acceptable name was found
	// within the attempt budget
	ErrGenerationExhausted = errors.New("generation exhausted")

	// ErrInvalidOptions is returned for out-of-range generation options
	ErrInvalidOptions = errors.New("invalid generation options")
)

// ExhaustedError describes a generation that ran out of attempts.
// It matches ErrGenerationExhausted with errors.Is.
type ExhaustedError struct {
	Algorithm       Algorithm
	Attempts        int
	MaxLen          int
	MinProbability  float64
	BestProbability float64
}

func (e *ExhaustedError) Error() string {
	if e.Algorithm == Bayesian {
		return fmt.Sprintf("%s: %s gave up after %d attempts (max length %d, threshold %g, best %g)",
			ErrGenerationExhausted, e.Algorithm, e.Attempts, e.MaxLen, e.MinProbability, e.BestProbability)
	}
	return fmt.Sprintf("%s: %s gave up after %d attempts (max length %d)",
		ErrGenerationExhausted, e.Algorithm, e.Attempts, e.MaxLen)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrGenerationExhausted
}
