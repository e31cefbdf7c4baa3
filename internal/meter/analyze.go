package meter

import "strings"

// LineMetric holds the metrics for one non-blank line of a poem.
type LineMetric struct {
	// Number is the 1-based line number in the original text,
	// blank lines included.
	Number int `json:"number"`

	// Text is the line as written, surrounding whitespace trimmed.
	Text string `json:"text"`

	Syllables int `json:"syllables"`
	Words     int `json:"words"`

	// Verse is the metrical name for the syllable count,
	// e.g. "Endecasílabo" for 11.
	Verse string `json:"verse"`
}

// Analysis is the full metrical breakdown of a text.
type Analysis struct {
	// Lines holds one metric per non-blank line, in order.
	Lines []LineMetric `json:"lines"`

	// Stanzas holds the number of non-blank lines in each blank-line
	// separated group. A text without blank lines is one stanza.
	Stanzas []int `json:"stanzas"`

	TotalSyllables int `json:"total_syllables"`
	TotalWords     int `json:"total_words"`
}

// AnalyzeLine computes the metrics for a single line.
func AnalyzeLine(line string) LineMetric {
	syl := CountLine(line)
	return LineMetric{
		Text:      strings.TrimSpace(line),
		Syllables: syl,
		Words:     CountWords(line),
		Verse:     VerseName(syl),
	}
}

// Analyze splits text into lines and computes per-line metrics plus totals.
// Blank lines carry no metrics of their own but delimit stanzas and still
// advance line numbering. Empty input yields an Analysis with empty slices,
// never nil.
func Analyze(text string) Analysis {
	a := Analysis{
		Lines:   []LineMetric{},
		Stanzas: []int{},
	}

	inStanza := 0
	for i, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			if inStanza > 0 {
				a.Stanzas = append(a.Stanzas, inStanza)
				inStanza = 0
			}
			continue
		}

		m := AnalyzeLine(raw)
		m.Number = i + 1
		a.Lines = append(a.Lines, m)
		a.TotalSyllables += m.Syllables
		a.TotalWords += m.Words
		inStanza++
	}
	if inStanza > 0 {
		a.Stanzas = append(a.Stanzas, inStanza)
	}

	return a
}
