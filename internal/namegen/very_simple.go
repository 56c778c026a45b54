package namegen

import (
	"math/rand"

	"github.com/wyrdbound/wyrdbound-rng/internal/analysis"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
)

// maxFreeMiddles is the most role-agnostic syllables VerySimple inserts
const maxFreeMiddles = 3

// verySimple picks every syllable uniformly, ignoring frequencies
type verySimple struct{}

func (verySimple) attempt(m *corpus.Model, _ *analysis.Analyzer, rng *rand.Rand, budget int) (draft, bool) {
	var d draft

	starts := fitting(append(append([]corpus.Syllable(nil), m.Syllables(corpus.RoleStart)...), m.Syllables(corpus.RoleSingle)...), budget)
	if len(starts) == 0 {
		return d, false
	}
	first := starts[rng.Intn(len(starts))]
	d.push(first.Text, m.Sources(first))
	if first.Role == corpus.RoleSingle {
		return d, true
	}
	remaining := budget - runeLen(first.Text)

	ends := m.Syllables(corpus.RoleEnd)
	reserve := shortest(ends)
	for n := rng.Intn(maxFreeMiddles + 1); n > 0; n-- {
		pool := fittingTexts(m.Texts(), remaining-reserve)
		if len(pool) == 0 {
			break
		}
		text := pool[rng.Intn(len(pool))]
		d.push(text, m.SourcesOfText(text))
		remaining -= runeLen(text)
	}

	if pool := fitting(ends, remaining); len(pool) > 0 {
		last := pool[rng.Intn(len(pool))]
		d.push(last.Text, m.Sources(last))
	}
	return d, true
}
