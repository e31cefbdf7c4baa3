package meter

import "fmt"

// verseNames maps syllable counts 1..14 to the traditional Spanish
// metrical names. Index 0 is unused.
var verseNames = [...]string{
	1:  "Monosílabo",
	2:  "Bisílabo",
	3:  "Trisílabo",
	4:  "Tetrasílabo",
	5:  "Pentasílabo",
	6:  "Hexasílabo",
	7:  "Heptasílabo",
	8:  "Octosílabo",
	9:  "Eneasílabo",
	10: "Decasílabo",
	11: "Endecasílabo",
	12: "Dodecasílabo",
	13: "Tridecasílabo",
	14: "Alejandrino",
}

// VerseName returns the traditional Spanish name for a line of n syllables.
// Counts outside 1..14 (including zero and negatives) get a synthesized
// "N sílabas" label rather than an error.
func VerseName(n int) string {
	if n >= 1 && n < len(verseNames) {
		return verseNames[n]
	}
	return fmt.Sprintf("%d sílabas", n)
}
