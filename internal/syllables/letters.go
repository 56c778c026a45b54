package syllables

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// baseLetters returns, for every rune of name, its lowercased base letter
// with diacritics stripped ('É' -> 'e'). Non-letters are kept as-is.
func baseLetters(runes []rune) []rune {
	base := make([]rune, len(runes))
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			base[i] = r
			continue
		}
		decomposed := []rune(norm.NFD.String(string(r)))
		base[i] = unicode.ToLower(decomposed[0])
	}
	return base
}

func hasLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isPlainVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
