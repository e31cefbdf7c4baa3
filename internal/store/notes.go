package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a note ID does not exist.
var ErrNotFound = errors.New("note not found")

// Note is a stored free-text note.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// CreateNote inserts a new note and returns it with its generated ID and
// timestamps filled in.
func (s *Store) CreateNote(ctx context.Context, title, content string) (Note, error) {
	note := Note{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
	}
	note.CreatedAt = s.now()
	note.UpdatedAt = note.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

// GetNote returns the note with the given ID, or ErrNotFound.
func (s *Store) GetNote(ctx context.Context, id string) (Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		WHERE id = ?
	`, id)

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Note{}, fmt.Errorf("get note %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Note{}, fmt.Errorf("get note %s: %w", id, err)
	}
	return note, nil
}

// ListNotes returns all notes, most recently updated first.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) ListNotes(ctx context.Context) ([]Note, error) {
	return s.queryNotes(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC, id ASC
	`)
}

// SearchNotes returns notes whose title or content contains the query,
// case-insensitively for ASCII, most recently updated first.
func (s *Store) SearchNotes(ctx context.Context, query string) ([]Note, error) {
	pattern := "%" + query + "%"
	return s.queryNotes(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		WHERE title LIKE ? OR content LIKE ?
		ORDER BY updated_at DESC, id ASC
	`, pattern, pattern)
}

// UpdateNote replaces a note's title and content and bumps its update
// timestamp. Returns ErrNotFound for unknown IDs.
func (s *Store) UpdateNote(ctx context.Context, id, title, content string) (Note, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ?
	`, title, content, s.now(), id)
	if err != nil {
		return Note{}, fmt.Errorf("update note %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Note{}, fmt.Errorf("update note %s: %w", id, err)
	}
	if affected == 0 {
		return Note{}, fmt.Errorf("update note %s: %w", id, ErrNotFound)
	}

	return s.GetNote(ctx, id)
}

// DeleteNote removes a note. Returns ErrNotFound for unknown IDs.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete note %s: %w", id, ErrNotFound)
	}

	return nil
}

func (s *Store) queryNotes(ctx context.Context, query string, args ...any) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (Note, error) {
	var n Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}
