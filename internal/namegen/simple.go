package namegen

import (
	"math/rand"

	"github.com/wyrdbound/wyrdbound-rng/internal/analysis"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
	"github.com/wyrdbound/wyrdbound-rng/internal/random"
)

// simple weights every pick by how often the syllable held that position.
// The number of middle syllables follows the corpus distribution.
type simple struct{}

func (simple) attempt(m *corpus.Model, _ *analysis.Analyzer, rng *rand.Rand, budget int) (draft, bool) {
	var d draft
	tables := m.Tables()

	first, ok := pickWeighted(rng, budget, tables.Position(corpus.RoleStart), tables.Position(corpus.RoleSingle))
	if !ok {
		return d, false
	}
	d.push(first.Text, m.Sources(first))
	if first.Role == corpus.RoleSingle {
		return d, true
	}
	remaining := budget - runeLen(first.Text)

	reserve := shortest(m.Syllables(corpus.RoleEnd))
	for n := middleCount(rng, tables); n > 0; n-- {
		mid, ok := pickWeighted(rng, remaining-reserve, tables.Position(corpus.RoleMiddle))
		if !ok {
			break
		}
		d.push(mid.Text, m.Sources(mid))
		remaining -= runeLen(mid.Text)
	}

	if last, ok := pickWeighted(rng, remaining, tables.Position(corpus.RoleEnd)); ok {
		d.push(last.Text, m.Sources(last))
	}
	return d, true
}

func middleCount(rng *rand.Rand, tables *corpus.Tables) int {
	counts, weights := tables.MiddleCounts()
	fw := make([]float64, len(weights))
	for i, w := range weights {
		fw[i] = float64(w)
	}
	if i := random.Weighted(rng, fw); i >= 0 {
		return counts[i]
	}
	return 0
}
