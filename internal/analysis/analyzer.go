// Package analysis scores syllable sequences against a corpus model.
//
// Transition probabilities use additive smoothing over the role-compatible
// successors of a syllable: a start or middle syllable may be followed by a
// middle or an end, an end or single syllable only by the end marker, and
// the start marker by a start or single syllable.
package analysis

import (
	"math"
	"sort"

	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
)

// DefaultSmoothing is the additive smoothing constant used when none is given
const DefaultSmoothing = 0.01

// MaxExamples bounds the example names and transitions reported per syllable
const MaxExamples = 5

type Analyzer struct {
	model *corpus.Model
	alpha float64
}

// New creates an Analyzer over model. A negative alpha selects DefaultSmoothing.
func New(model *corpus.Model, alpha float64) *Analyzer {
	if alpha < 0 {
		alpha = DefaultSmoothing
	}
	return &Analyzer{model: model, alpha: alpha}
}

// Smoothing returns the additive smoothing constant in use
func (a *Analyzer) Smoothing() float64 { return a.alpha }

// Successors lists the corpus syllables allowed to follow prev
func (a *Analyzer) Successors(prev corpus.Syllable) []corpus.Syllable {
	switch {
	case prev == corpus.StartMarker:
		return concat(a.model.Syllables(corpus.RoleStart), a.model.Syllables(corpus.RoleSingle))
	case prev == corpus.EndMarker:
		return nil
	case prev.Role == corpus.RoleStart, prev.Role == corpus.RoleMiddle:
		return concat(a.model.Syllables(corpus.RoleMiddle), a.model.Syllables(corpus.RoleEnd))
	}
	return []corpus.Syllable{corpus.EndMarker}
}

// Weight is the smoothed, unnormalized score of next following prev
func (a *Analyzer) Weight(prev, next corpus.Syllable) float64 {
	return float64(a.model.Tables().Successors(prev).Count(next)) + a.alpha
}

// TransitionProbability returns P(next | prev)
//
//	(count(prev->next) + alpha) / (total(prev) + alpha * |successors(prev) + next|)
func (a *Analyzer) TransitionProbability(prev, next corpus.Syllable) float64 {
	cands := a.Successors(prev)
	k := len(cands)
	if !contains(cands, next) {
		k++
	}
	denom := float64(a.model.Tables().Successors(prev).Total()) + a.alpha*float64(k)
	if denom == 0 {
		return 0
	}
	return a.Weight(prev, next) / denom
}

// ProbabilityOf returns the joint probability of a syllable sequence, from
// the start marker through every syllable to the end marker. Positional
// roles are assigned from the sequence itself. A sequence that is empty or
// uses a syllable unknown to the corpus scores 0.
func (a *Analyzer) ProbabilityOf(texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	for _, t := range texts {
		if !a.model.Contains(t) {
			return 0
		}
	}

	p := 1.0
	prev := corpus.StartMarker
	for _, s := range corpus.Label(texts) {
		p *= a.TransitionProbability(prev, s)
		prev = s
	}
	return p * a.TransitionProbability(prev, corpus.EndMarker)
}

// Normalize turns the joint probability of a sequence of n syllables into a
// per-transition geometric mean, making names of different lengths comparable.
func Normalize(p float64, n int) float64 {
	if p <= 0 || n < 1 {
		return 0
	}
	return math.Pow(p, 1/float64(n+1))
}

func concat(parts ...[]corpus.Syllable) []corpus.Syllable {
	var out []corpus.Syllable
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func contains(syls []corpus.Syllable, s corpus.Syllable) bool {
	for _, c := range syls {
		if c == s {
			return true
		}
	}
	return false
}

// sortTransitions orders by probability, then count, then target text
func sortTransitions(ts []TransitionInfo) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Probability != ts[j].Probability {
			return ts[i].Probability > ts[j].Probability
		}
		if ts[i].Count != ts[j].Count {
			return ts[i].Count > ts[j].Count
		}
		return ts[i].To.Text < ts[j].To.Text
	})
}
