package namegen

import (
	"math/rand"
	"unicode/utf8"

	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
	"github.com/wyrdbound/wyrdbound-rng/internal/random"
)

// draft is a candidate name before capitalization and scoring
type draft struct {
	syllables   []string
	sources     []string
	probability *float64
}

func (d *draft) push(text string, sources []string) {
	d.syllables = append(d.syllables, text)
	d.sources = append(d.sources, sources...)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// fitting keeps the syllables no longer than budget
func fitting(syls []corpus.Syllable, budget int) []corpus.Syllable {
	var out []corpus.Syllable
	for _, s := range syls {
		if runeLen(s.Text) <= budget {
			out = append(out, s)
		}
	}
	return out
}

func fittingTexts(texts []string, budget int) []string {
	var out []string
	for _, t := range texts {
		if runeLen(t) <= budget {
			out = append(out, t)
		}
	}
	return out
}

// shortest returns the length of the shortest syllable, or 0 if there is none
func shortest(syls []corpus.Syllable) int {
	best := 0
	for i, s := range syls {
		if n := runeLen(s.Text); i == 0 || n < best {
			best = n
		}
	}
	return best
}

// pickWeighted draws from the fitting keys of the given buckets, weighted by count
func pickWeighted(rng *rand.Rand, budget int, buckets ...*corpus.Bucket) (corpus.Syllable, bool) {
	var (
		keys    []corpus.Syllable
		weights []float64
	)
	for _, b := range buckets {
		for _, k := range b.Keys() {
			if runeLen(k.Text) <= budget {
				keys = append(keys, k)
				weights = append(weights, float64(b.Count(k)))
			}
		}
	}
	i := random.Weighted(rng, weights)
	if i < 0 {
		return corpus.Syllable{}, false
	}
	return keys[i], true
}
