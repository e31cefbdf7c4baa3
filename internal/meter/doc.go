// Package meter implements rule-based Spanish syllabification and verse
// metrics.
//
// The engine is a set of pure functions over strings: no state is shared
// between calls, no I/O is performed, and every function is total over its
// input domain. Malformed input (empty strings, punctuation, non-Spanish
// characters) is handled by policy rather than by error returns, so callers
// never need failure branches around a count.
//
// # Critical Patterns
//
// CP-1: Normalization Before Scanning
//   - Every word is NFC-normalized and lowercased before vowels are examined
//   - Combining accents merge into precomposed characters so "á" is one rune
//
// CP-2: Table-Driven Diphthong Detection
//   - Adjacent vowel pairs are resolved by membership in a static set,
//     never by a cascade of conditionals
//   - Pairs with a written accent on the closed vowel (ía, aí, úo, ...) are
//     absent from the set and therefore split as hiatus: "día" is dí-a,
//     "poesía" is po-e-sí-a
//
// CP-3: Non-Empty Floor
//   - A word that still has letters after stripping counts at least one
//     syllable even without vowels ("shh" counts 1)
//
// Syllable counts feed the traditional Spanish verse names (Monosílabo
// through Alejandrino) used to classify lines, e.g. recognizing an
// 11-syllable Endecasílabo when validating a sonnet.
package meter
