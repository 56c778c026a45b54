package corpus

import "errors"

var (
	// ErrInvalidName is returned when a corpus entry is empty or cannot be segmented
	ErrInvalidName = errors.New("invalid corpus name")

	// ErrEmptyCorpus is returned when a corpus holds no names at all
	ErrEmptyCorpus = errors.New("corpus has no names")
)
