package namegen

import (
	"math/rand"

	"github.com/wyrdbound/wyrdbound-rng/internal/analysis"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
	"github.com/wyrdbound/wyrdbound-rng/internal/random"
)

// bayesian walks the smoothed transition model from the start marker until
// the end marker is drawn or nothing else fits, then scores the result.
type bayesian struct{}

func (bayesian) attempt(m *corpus.Model, a *analysis.Analyzer, rng *rand.Rand, budget int) (draft, bool) {
	var d draft
	tables := m.Tables()

	prev := corpus.StartMarker
	remaining := budget
	for {
		cands := a.Successors(prev)
		weights := make([]float64, len(cands))
		for i, c := range cands {
			if c == corpus.EndMarker || runeLen(c.Text) <= remaining {
				weights[i] = a.Weight(prev, c)
			}
		}
		i := random.Weighted(rng, weights)
		if i < 0 {
			break
		}
		next := cands[i]
		if next == corpus.EndMarker {
			d.sources = append(d.sources, tables.TransitionSources(prev, next)...)
			break
		}

		sources := tables.TransitionSources(prev, next)
		if len(sources) == 0 {
			sources = m.Sources(next)
		}
		d.push(next.Text, sources)
		remaining -= runeLen(next.Text)
		prev = next
	}

	if len(d.syllables) == 0 {
		return d, false
	}
	p := a.ProbabilityOf(d.syllables)
	d.probability = &p
	return d, true
}
