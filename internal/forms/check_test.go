package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuaderno/internal/meter"
)

func repeatedLines(line string, n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestCheckSonetoOK(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	soneto, _ := cat.Get("soneto")

	a := meter.Analyze(repeatedLines("la clara luna mira mi ventana", 14))
	r := Check(soneto, a)

	assert.True(t, r.OK)
	assert.Equal(t, 14, r.LineCount)
	assert.Empty(t, r.Deviations)
	assert.Equal(t, "soneto: ok (14 lines)", r.Summary())
}

func TestCheckSonetoWrongLineCount(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	soneto, _ := cat.Get("soneto")

	a := meter.Analyze(repeatedLines("la clara luna mira mi ventana", 13))
	r := Check(soneto, a)

	assert.False(t, r.OK)
	assert.Equal(t, 13, r.LineCount)
	assert.Equal(t, 14, r.WantLines)
	assert.Empty(t, r.Deviations, "every present line still scans")
	assert.Contains(t, r.Summary(), "expected 14 lines")
}

func TestCheckMeterDeviation(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	copla, _ := cat.Get("copla")

	// Third line is hendecasyllable in an octosyllabic form.
	text := "La luna brilla de noche\n" +
		"y el río canta su son\n" +
		"la clara luna mira mi ventana\n" +
		"y se duerme el corazón"
	r := Check(copla, meter.Analyze(text))

	assert.False(t, r.OK)
	require.Len(t, r.Deviations, 1)
	assert.Equal(t, 3, r.Deviations[0].Number)
	assert.Equal(t, 11, r.Deviations[0].Got)
	assert.Equal(t, 8, r.Deviations[0].Want)
	assert.Contains(t, r.Summary(), "off meter")
}

func TestCheckPatternCycles(t *testing.T) {
	f := Form{Name: "alterno", Pattern: []int{7, 5}}

	text := "duerme el agua clara\n" + // 7
		"bajo el hielo\n" + // 5
		"duerme el agua clara\n" + // 7
		"luz de invierno" // 5
	r := Check(f, meter.Analyze(text))

	assert.True(t, r.OK)
}

func TestCheckTolerance(t *testing.T) {
	strict := Form{Name: "estricto", Meter: 8}
	loose := Form{Name: "laxo", Meter: 8, Tolerance: 1}

	// Heptasyllable line, one short of the meter.
	a := meter.Analyze("duerme el agua clara")

	assert.False(t, Check(strict, a).OK)
	assert.True(t, Check(loose, a).OK)
}

func TestCheckOpenForm(t *testing.T) {
	// romance fixes the meter but not the line count.
	cat, err := Default()
	require.NoError(t, err)
	romance, _ := cat.Get("romance")

	r := Check(romance, meter.Analyze(repeatedLines("La luna brilla de noche", 6)))
	assert.True(t, r.OK)
	assert.Equal(t, 6, r.LineCount)
}

func TestCheckEmptyPoem(t *testing.T) {
	f := Form{Name: "soneto", Lines: 14, Meter: 11}
	r := Check(f, meter.Analyze(""))

	assert.False(t, r.OK)
	assert.Equal(t, 0, r.LineCount)
}
