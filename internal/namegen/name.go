package namegen

import "github.com/wyrdbound/wyrdbound-rng/internal/analysis"

// GeneratedName is the result of one generation. It is never mutated after
// being returned.
type GeneratedName struct {
	Name           string
	Syllables      []string
	SourceNames    []string
	Probability    *float64 // set by Bayesian only
	ExistsInCorpus bool // Name, or the syllables joined before capitalization, is a corpus name
	Algorithm      Algorithm
}

// NormalizedProbability returns the geometric mean of the joint probability
// over the name's transitions. ok is false when no probability was computed.
func (n GeneratedName) NormalizedProbability() (p float64, ok bool) {
	if n.Probability == nil {
		return 0, false
	}
	return analysis.Normalize(*n.Probability, len(n.Syllables)), true
}

func (n GeneratedName) String() string {
	return n.Name
}
