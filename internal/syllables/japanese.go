package syllables

// JapaneseSegmenter splits romanized Japanese names into morae
type JapaneseSegmenter struct {
	onsets []string // longest first
}

func NewJapaneseSegmenter() *JapaneseSegmenter {
	return &JapaneseSegmenter{
		onsets: []string{
			"ch", "sh", "ts", "dz", "ky", "gy", "ny", "hy", "by", "py", "my", "ry",
			"k", "g", "s", "z", "t", "d", "n", "h", "b", "p", "m", "y", "r", "w", "j", "f", "v",
		},
	}
}

// Segment implements Segmenter
func (s *JapaneseSegmenter) Segment(name string) []string {
	runes := []rune(name)
	if !hasLetter(runes) {
		return nil
	}
	base := baseLetters(runes)

	var out []string
	start := 0
	for i := 0; i < len(base); {
		if n := s.mora(base, i); n > 0 {
			end := i + n
			if s.moraicN(base, end) {
				end++
			}
			out = append(out, string(runes[start:end]))
			start, i = end, end
			continue
		}
		if s.moraicN(base, i) {
			out = append(out, string(runes[start:i+1]))
			start = i + 1
		}
		i++
	}

	if start < len(runes) {
		rest := string(runes[start:])
		if len(out) == 0 {
			return []string{rest}
		}
		out[len(out)-1] += rest
	}
	return out
}

// mora returns the length of the mora starting at i, or 0 if none does
func (s *JapaneseSegmenter) mora(base []rune, i int) int {
	if i+1 < len(base) && isConsonant(base[i]) && base[i] != 'n' &&
		(base[i+1] == base[i] || (base[i] == 't' && base[i+1] == 'c')) {
		if n := s.openMora(base, i+1); n > 1 {
			return n + 1
		}
	}
	return s.openMora(base, i)
}

// openMora matches an optional onset followed by a single vowel
func (s *JapaneseSegmenter) openMora(base []rune, i int) int {
	for _, o := range s.onsets {
		or := []rune(o)
		j := i + len(or)
		if j < len(base) && string(base[i:j]) == o && isPlainVowel(base[j]) {
			return len(or) + 1
		}
	}
	if isPlainVowel(base[i]) {
		return 1
	}
	return 0
}

// moraicN reports whether base[i] is a syllable-closing n
func (s *JapaneseSegmenter) moraicN(base []rune, i int) bool {
	if i >= len(base) || base[i] != 'n' {
		return false
	}
	if i+1 == len(base) {
		return true
	}
	next := base[i+1]
	return !isPlainVowel(next) && next != 'y'
}

func isConsonant(r rune) bool {
	return r >= 'a' && r <= 'z' && !isPlainVowel(r)
}
