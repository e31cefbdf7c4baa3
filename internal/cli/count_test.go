package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuaderno/internal/meter"
)

func TestCountTextOutput(t *testing.T) {
	out, err := execute(t, "count", "Un", "ave", "vuela")
	require.NoError(t, err)

	assert.Contains(t, out, "Pentasílabo")
	assert.Contains(t, out, "Un ave vuela")
	assert.Contains(t, out, "1 line(s), 5 syllable(s), 3 word(s)")
}

func TestCountJSONOutput(t *testing.T) {
	out, err := execute(t, "--format", "json", "count", "Un ave vuela")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   meter.Analysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Lines, 1)
	assert.Equal(t, 5, resp.Data.Lines[0].Syllables)
	assert.Equal(t, "Pentasílabo", resp.Data.Lines[0].Verse)
	assert.Equal(t, 3, resp.Data.TotalWords)
}

func TestCountFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poema.txt")
	poem := "La luna brilla de noche\ny el río canta su son\n"
	require.NoError(t, os.WriteFile(path, []byte(poem), 0o644))

	out, err := execute(t, "count", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Octosílabo")
	assert.Contains(t, out, "2 line(s), 16 syllable(s), 11 word(s)")
}

func TestCountMissingFile(t *testing.T) {
	_, err := execute(t, "count", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCountNoInput(t *testing.T) {
	_, err := execute(t, "count")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
