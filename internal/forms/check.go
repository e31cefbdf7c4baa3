package forms

import (
	"fmt"

	"cuaderno/internal/meter"
)

// Deviation is one line whose syllable count misses the form's expectation
// by more than the allowed tolerance.
type Deviation struct {
	// Number is the line's 1-based number in the original text.
	Number int `json:"number"`

	Got  int `json:"got"`
	Want int `json:"want"`
}

// Report is the result of checking a poem against a verse form.
type Report struct {
	Form       string      `json:"form"`
	OK         bool        `json:"ok"`
	LineCount  int         `json:"line_count"`
	WantLines  int         `json:"want_lines,omitempty"`
	Deviations []Deviation `json:"deviations,omitempty"`
}

// Summary renders a one-line human verdict.
func (r Report) Summary() string {
	if r.OK {
		return fmt.Sprintf("%s: ok (%d lines)", r.Form, r.LineCount)
	}
	if r.WantLines > 0 && r.LineCount != r.WantLines {
		return fmt.Sprintf("%s: expected %d lines, got %d", r.Form, r.WantLines, r.LineCount)
	}
	return fmt.Sprintf("%s: %d line(s) off meter", r.Form, len(r.Deviations))
}

// Check compares a poem's analysis against a verse form.
//
// Line count is checked when the form fixes one. Each non-blank line is
// then checked against the expected syllable count: the pattern entry for
// its position (cycling) when the form has a pattern, the uniform meter
// otherwise. Zero expectations are skipped.
func Check(f Form, a meter.Analysis) Report {
	r := Report{
		Form:      f.Name,
		OK:        true,
		LineCount: len(a.Lines),
		WantLines: f.Lines,
	}

	if f.Lines > 0 && len(a.Lines) != f.Lines {
		r.OK = false
	}

	for i, line := range a.Lines {
		want := f.Meter
		if len(f.Pattern) > 0 {
			want = f.Pattern[i%len(f.Pattern)]
		}
		if want == 0 {
			continue
		}
		if abs(line.Syllables-want) > f.Tolerance {
			r.OK = false
			r.Deviations = append(r.Deviations, Deviation{
				Number: line.Number,
				Got:    line.Syllables,
				Want:   want,
			})
		}
	}

	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
