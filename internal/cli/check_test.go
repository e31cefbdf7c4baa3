package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuaderno/internal/forms"
)

func writePoem(t *testing.T, poem string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poema.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0o644))
	return path
}

func TestCheckHaikuFits(t *testing.T) {
	path := writePoem(t, "luz de invierno\nduerme el agua clara\nbajo el hielo\n")

	out, err := execute(t, "check", "--form", "haiku", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "haiku: ok (3 lines)")
}

func TestCheckCoplaOffMeter(t *testing.T) {
	// Third line is hendecasyllable in an octosyllabic form.
	poem := "La luna brilla de noche\n" +
		"y el río canta su son\n" +
		"la clara luna mira mi ventana\n" +
		"y se duerme el corazón\n"
	path := writePoem(t, poem)

	out, err := execute(t, "check", "--form", "copla", "--file", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "line 3: 11 syllables, want 8")
}

func TestCheckJSONReport(t *testing.T) {
	path := writePoem(t, "luz de invierno\nduerme el agua clara\nbajo el hielo\n")

	out, err := execute(t, "--format", "json", "check", "--form", "haiku", "--file", path)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   forms.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.OK)
	assert.Equal(t, "haiku", resp.Data.Form)
	assert.Equal(t, 3, resp.Data.LineCount)
}

func TestCheckUnknownForm(t *testing.T) {
	path := writePoem(t, "luz de invierno\n")

	_, err := execute(t, "check", "--form", "villanelle", "--file", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown form")
}

func TestCheckUserFormsDir(t *testing.T) {
	dir := t.TempDir()
	userForm := `forms: pareado: {lines: 2}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pareado.cue"), []byte(userForm), 0o644))
	path := writePoem(t, "La luna brilla de noche\ny el río canta su son\n")

	out, err := execute(t, "check", "--form", "pareado", "--forms-dir", dir, "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "pareado: ok (2 lines)")
}

func TestFormsListsCatalog(t *testing.T) {
	out, err := execute(t, "forms")
	require.NoError(t, err)

	assert.Contains(t, out, "soneto")
	assert.Contains(t, out, "14x11")
	assert.Contains(t, out, "5-7-5")
	assert.Contains(t, out, "romance")
}
