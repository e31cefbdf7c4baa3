package meter

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// vowels are the Spanish vowel runes, lowercase, including accented forms
// and the diaeresis u (as in "pingüino").
var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'á': true, 'é': true, 'í': true, 'ó': true, 'ú': true,
	'ü': true,
}

// diphthongs is the set of adjacent vowel pairs pronounced as a single
// syllable nucleus. Membership is checked on the lowercase, NFC-normalized
// pair. Pairs carrying a written accent on the closed vowel (ía, aí, úo, ...)
// are deliberately absent: the accent marks hiatus, so each vowel gets its
// own nucleus.
var diphthongs = map[string]bool{
	// closed + open, open + closed, unaccented
	"ai": true, "au": true, "ei": true, "eu": true, "oi": true, "ou": true,
	"ia": true, "ie": true, "io": true, "iu": true,
	"ua": true, "ue": true, "ui": true, "uo": true,
	// accent on the open vowel keeps the diphthong
	"ái": true, "áu": true, "éi": true, "éu": true, "ói": true,
	"iá": true, "ié": true, "ió": true,
	"uá": true, "ué": true, "uó": true,
	// two closed vowels merge even when one carries the accent
	"íu": true, "úi": true, "iú": true,
	// güe/güi: the diaeresis u is always pronounced and never splits
	"üa": true, "üe": true, "üi": true, "üo": true,
}

// normalize folds a word to the canonical form the scanner expects:
// NFC composition first (combining accents merge into precomposed runes),
// then lowercase.
func normalize(word string) string {
	return strings.ToLower(norm.NFC.String(word))
}

// isSpanishLetter reports whether r belongs to the lowercase Spanish
// alphabet, accented vowels and ñ included.
func isSpanishLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}

// stripWord removes every rune that is not a Spanish letter from an
// already-normalized word. Digits, punctuation and foreign characters
// disappear; "¡hola!" becomes "hola".
func stripWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if isSpanishLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CountWord returns the number of syllables in a single word.
//
// The word is normalized (NFC + lowercase) and stripped of non-letters
// before scanning. Each vowel opens a syllable; when the following rune is
// also a vowel and the pair is a diphthong, the second vowel is absorbed
// into the current syllable. Adjacent vowels that are not a diphthong split
// as hiatus.
//
// An empty word (or one that strips to empty) counts 0. Any word with
// letters counts at least 1, vowels or not.
func CountWord(word string) int {
	w := stripWord(normalize(word))
	if w == "" {
		return 0
	}

	runes := []rune(w)
	count := 0
	for i := 0; i < len(runes); i++ {
		if !vowels[runes[i]] {
			continue
		}
		count++
		// Absorb the next vowel when the pair forms a diphthong.
		if i+1 < len(runes) && vowels[runes[i+1]] && diphthongs[string(runes[i:i+2])] {
			i++
		}
	}

	// Floor for vowel-less tokens ("shh", abbreviations).
	if count == 0 {
		return 1
	}
	return count
}

// CountText returns the total syllable count across all whitespace-separated
// words in text. Tokens that strip to nothing (pure punctuation) contribute
// nothing. Empty or all-whitespace text counts 0.
func CountText(text string) int {
	total := 0
	for _, tok := range strings.Fields(text) {
		total += CountWord(tok)
	}
	return total
}

// CountLine returns the syllable count of a single verse line. It is the
// line-oriented entry point for verse-by-verse metrics; lines and free text
// are counted identically.
func CountLine(line string) int {
	return CountText(line)
}

// CountWords returns the number of words in text. A token must keep at
// least one Spanish letter after stripping to count; a run of bare
// punctuation is not a word.
func CountWords(text string) int {
	n := 0
	for _, tok := range strings.Fields(text) {
		if stripWord(normalize(tok)) != "" {
			n++
		}
	}
	return n
}
