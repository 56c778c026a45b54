package syllables

import (
	"sort"
	"strings"
	"unicode"
)

// Inventory holds the sound units a segmenter recognizes
type Inventory struct {
	Onsets []string // consonant clusters allowed to open a syllable
	Nuclei []string // vowel groups that stay together (required)

	onsetSet map[string]bool
	maxOnset int
}

// NewInventory creates an Inventory from the given onsets and nuclei.
// Nuclei are matched longest first.
func NewInventory(onsets, nuclei []string) Inventory {
	if len(nuclei) == 0 {
		panic("nuclei are required")
	}

	sorted := append([]string(nil), nuclei...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i])) > len([]rune(sorted[j]))
	})

	inv := Inventory{
		Onsets:   onsets,
		Nuclei:   sorted,
		onsetSet: make(map[string]bool, len(onsets)),
	}
	for _, o := range onsets {
		inv.onsetSet[o] = true
		if n := len([]rune(o)); n > inv.maxOnset {
			inv.maxOnset = n
		}
	}
	return inv
}

// IsOnset reports whether the lowercase cluster may open a syllable
func (inv *Inventory) IsOnset(cluster string) bool {
	return inv.onsetSet[cluster]
}

// FantasySegmenter splits invented Western-style names at vowel nuclei,
// giving each syllable the longest legal onset from the preceding
// consonant cluster.
type FantasySegmenter struct {
	Inventory
}

func NewFantasySegmenter() *FantasySegmenter {
	return &FantasySegmenter{
		NewInventory(
			[]string{"b", "br", "bh", "bl", "c", "cr", "ch", "cl", "chr", "d", "dr", "dw",
				"f", "fr", "fl", "g", "gr", "gl", "gw", "gh", "h", "j", "k", "kr", "kh",
				"l", "ll", "m", "n", "p", "ph", "pr", "q", "qu", "r", "s", "sh", "sl",
				"t", "th", "tr", "thr", "v", "vh", "w", "x", "y", "z"},
			[]string{"a", "ae", "ai", "au", "aa", "e", "eo", "ei", "ea", "ee",
				"i", "o", "oo", "u", "uu", "y"},
		),
	}
}

type span struct{ start, end int }

// Segment implements Segmenter
func (s *FantasySegmenter) Segment(name string) []string {
	runes := []rune(name)
	if !hasLetter(runes) {
		return nil
	}
	base := baseLetters(runes)
	nuclei := s.nuclei(base)
	if len(nuclei) == 0 {
		return []string{name}
	}

	bounds := make([]int, 0, len(nuclei)-1)
	for k := 1; k < len(nuclei); k++ {
		bounds = append(bounds, s.onsetStart(runes, base, nuclei[k-1].end, nuclei[k].start))
	}
	return splitAt(runes, bounds)
}

// nuclei finds the vowel groups of the name in order
func (s *FantasySegmenter) nuclei(base []rune) []span {
	vowel := make([]bool, len(base))
	for i, r := range base {
		switch {
		case r == 'y':
			vowel[i] = i+1 >= len(base) || !isPlainVowel(base[i+1])
		case r == 'u' && i > 0 && base[i-1] == 'q':
			// the u of qu belongs to the onset
			vowel[i] = false
		default:
			vowel[i] = isPlainVowel(r)
		}
	}

	var out []span
	for i := 0; i < len(base); {
		if !vowel[i] {
			i++
			continue
		}
		end := i
		for end < len(base) && vowel[end] {
			end++
		}
		for i < end {
			n := s.matchNucleus(base[i:end])
			out = append(out, span{i, i + n})
			i += n
		}
	}
	return out
}

func (s *FantasySegmenter) matchNucleus(run []rune) int {
	for _, n := range s.Nuclei {
		nr := []rune(n)
		if len(nr) <= len(run) && string(run[:len(nr)]) == n {
			return len(nr)
		}
	}
	return 1
}

// onsetStart picks where the next syllable begins inside the consonant
// cluster [from, to). Whatever precedes it is the previous coda.
func (s *FantasySegmenter) onsetStart(runes, base []rune, from, to int) int {
	lo := to - s.maxOnset
	if lo < from {
		lo = from
	}
	for j := lo; j < to; j++ {
		if allLetters(runes[j:to]) && s.IsOnset(strings.ToLower(string(base[j:to]))) {
			return j
		}
	}
	return to
}

func allLetters(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
