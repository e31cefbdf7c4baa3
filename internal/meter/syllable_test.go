package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWordBasics(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"sol", 1},
		{"amor", 2},   // a-mor
		{"casa", 2},   // ca-sa
		{"ventana", 3}, // ven-ta-na
		{"corazón", 3}, // co-ra-zón
		{"luna", 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWord(tt.word))
		})
	}
}

func TestCountWordDiphthongs(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"aire", 2},     // ai-re
		{"causa", 2},    // cau-sa
		{"reina", 2},    // rei-na
		{"deuda", 2},    // deu-da
		{"boina", 2},    // boi-na
		{"piano", 2},    // pia-no
		{"tierra", 2},   // tie-rra
		{"radio", 2},    // ra-dio
		{"ciudad", 2},   // ciu-dad
		{"agua", 2},     // a-gua
		{"fuego", 2},    // fue-go
		{"ruido", 2},    // rui-do
		{"antiguo", 3},  // an-ti-guo
		{"canción", 2},  // can-ción, accent on the open vowel keeps the diphthong
		{"también", 2},  // tam-bién
		{"náutico", 3},  // náu-ti-co
		{"huésped", 2},  // hués-ped
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWord(tt.word))
		})
	}
}

func TestCountWordHiatus(t *testing.T) {
	// Two open vowels, or an accented closed vowel beside an open one,
	// split into separate nuclei.
	tests := []struct {
		word string
		want int
	}{
		{"caos", 2},    // ca-os
		{"poeta", 3},   // po-e-ta
		{"teatro", 3},  // te-a-tro
		{"leer", 2},    // le-er
		{"día", 2},     // dí-a
		{"raíz", 2},    // ra-íz
		{"país", 2},    // pa-ís
		{"baúl", 2},    // ba-úl
		{"poesía", 4},  // po-e-sí-a
		{"búho", 2},    // bú-ho
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWord(tt.word))
		})
	}
}

func TestCountWordDiaeresis(t *testing.T) {
	assert.Equal(t, 3, CountWord("pingüino"))  // pin-güi-no
	assert.Equal(t, 3, CountWord("vergüenza")) // ver-güen-za
}

func TestCountWordFloor(t *testing.T) {
	// Letters but no vowels still count one syllable.
	assert.Equal(t, 1, CountWord("shh"))
	assert.Equal(t, 1, CountWord("pst"))
	// Pure punctuation strips to nothing and counts zero.
	assert.Equal(t, 0, CountWord("..."))
	assert.Equal(t, 0, CountWord("—"))
	assert.Equal(t, 0, CountWord("123"))
}

func TestCountWordCaseAndAccentFolding(t *testing.T) {
	assert.Equal(t, CountWord("árbol"), CountWord("ÁRBOL"))
	assert.Equal(t, CountWord("canción"), CountWord("CANCIÓN"))
	assert.Equal(t, 2, CountWord("ÁRBOL"))
}

func TestCountWordNFCNormalization(t *testing.T) {
	// "í" as a decomposed i + combining acute must count like the
	// precomposed form.
	decomposed := "día" // d + i + U+0301 + a
	assert.Equal(t, CountWord("día"), CountWord(decomposed))
	assert.Equal(t, 2, CountWord(decomposed))
}

func TestCountWordStripsPunctuation(t *testing.T) {
	assert.Equal(t, CountWord("hola"), CountWord("¡hola!"))
	assert.Equal(t, 2, CountWord("«luna»"))
	assert.Equal(t, 2, CountWord("amor,"))
}

func TestCountWordIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, CountWord("poesía"))
		assert.Equal(t, 2, CountWord("aire"))
	}
}

func TestCountText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t  ", 0},
		{"single word", "amor", 2},
		{"sums per word", "Un ave vuela", 5}, // un=1 a-ve=2 vue-la=2
		{"punctuation stripped", "¡hola!", 2},
		{"punctuation-only tokens excluded", "luna — y — sol", 4},
		{"multiple spaces", "la   luna", 3},
		{"newlines are whitespace", "la\nluna", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountText(tt.text))
		})
	}
}

func TestCountLineMatchesCountText(t *testing.T) {
	lines := []string{"", "Un ave vuela", "¡hola!", "la clara luna mira mi ventana"}
	for _, line := range lines {
		assert.Equal(t, CountText(line), CountLine(line))
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"three words", "Un ave vuela", 3},
		{"punctuation token not a word", "luna — sol", 2},
		{"consonant-only token is a word", "shh luna", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}
