package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cuaderno/internal/store"
)

// defaultDBPath resolves where the notes database lives when --db is not
// given: $XDG_DATA_HOME/cuaderno/notes.db, falling back to
// ~/.local/share/cuaderno/notes.db.
func defaultDBPath() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "cuaderno", "notes.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "cuaderno", "notes.db"), nil
}

// openStore opens the notes database from --db or the default location,
// creating parent directories as needed.
func openStore(opts *RootOptions) (*store.Store, error) {
	path := opts.Database
	if path == "" {
		var err error
		path, err = defaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	slog.Debug("opening notes database", "path", path)
	s, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open notes database", err)
	}
	return s, nil
}
