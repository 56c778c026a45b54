package syllables

import (
	"fmt"
	"sort"
	"strings"
)

// Segmenter splits a name into syllables.
//
// Implementations must be deterministic and must never drop or reorder
// characters: joining the returned syllables yields the input unchanged.
// A name without any letters segments to an empty slice.
type Segmenter interface {
	Segment(name string) []string
}

// Kind names a registered segmentation strategy
type Kind string

const (
	KindFantasy  Kind = "fantasy"
	KindJapanese Kind = "japanese"
)

var registry = map[Kind]func() Segmenter{
	KindFantasy:  func() Segmenter { return NewFantasySegmenter() },
	KindJapanese: func() Segmenter { return NewJapaneseSegmenter() },
}

// Kinds lists the registered segmenter kinds in name order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseKind resolves a segmenter name, ignoring case and surrounding space
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSegmenter, s)
	}
	return k, nil
}

// New returns a fresh segmenter of the given kind
func New(kind Kind) (Segmenter, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSegmenter, string(kind))
	}
	return factory(), nil
}

// splitAt cuts runes at the given ascending boundaries
func splitAt(runes []rune, bounds []int) []string {
	out := make([]string, 0, len(bounds)+1)
	prev := 0
	for _, b := range bounds {
		out = append(out, string(runes[prev:b]))
		prev = b
	}
	return append(out, string(runes[prev:]))
}
