package syllables

import "errors"

// ErrUnknownSegmenter is returned when a segmenter name is not registered
var ErrUnknownSegmenter = errors.New("unknown segmenter")
