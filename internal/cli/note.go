package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cuaderno/internal/meter"
	"cuaderno/internal/store"
)

// noteListEntry is the listing payload: note metadata plus quick stats,
// without the full content.
type noteListEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Words     int    `json:"words"`
	Syllables int    `json:"syllables"`
	UpdatedAt int64  `json:"updated_at"`
}

// NewNoteCommand creates the note command group.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage stored notes",
		Long:  "Create, list, show, edit, delete and search notes in the local database.",
	}

	cmd.AddCommand(newNoteNewCommand(rootOpts))
	cmd.AddCommand(newNoteListCommand(rootOpts))
	cmd.AddCommand(newNoteShowCommand(rootOpts))
	cmd.AddCommand(newNoteEditCommand(rootOpts))
	cmd.AddCommand(newNoteRemoveCommand(rootOpts))
	cmd.AddCommand(newNoteSearchCommand(rootOpts))

	return cmd
}

func newNoteNewCommand(rootOpts *RootOptions) *cobra.Command {
	var title, file string

	cmd := &cobra.Command{
		Use:   "new [text...]",
		Short: "Create a note",
		Long: `Create a note from arguments, --file, or stdin (--file -).

Example:
  cuaderno note new --title "Copla" "La luna brilla de noche"
  cuaderno note new --title "Soneto" --file soneto.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readText(file, args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			note, err := s.CreateNote(cmd.Context(), title, content)
			if err != nil {
				return WrapExitError(ExitCommandError, "create note", err)
			}

			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			if formatter.JSON() {
				return formatter.Success(note)
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read content from file (\"-\" for stdin)")

	return cmd
}

func newNoteListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List notes, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			notes, err := s.ListNotes(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "list notes", err)
			}
			return writeNoteList(rootOpts, cmd, notes)
		},
	}

	return cmd
}

func newNoteSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "search <query>",
		Short:         "Search notes by title and content",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			notes, err := s.SearchNotes(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "search notes", err)
			}
			return writeNoteList(rootOpts, cmd, notes)
		},
	}

	return cmd
}

func newNoteShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <note-id>",
		Short:         "Print a note",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			note, err := getNote(s, cmd, args[0])
			if err != nil {
				return err
			}

			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			if formatter.JSON() {
				return formatter.Success(note)
			}

			w := cmd.OutOrStdout()
			if note.Title != "" {
				fmt.Fprintf(w, "%s\n\n", note.Title)
			}
			fmt.Fprintln(w, note.Content)
			return nil
		},
	}

	return cmd
}

func newNoteEditCommand(rootOpts *RootOptions) *cobra.Command {
	var title, file string

	cmd := &cobra.Command{
		Use:   "edit <note-id> [text...]",
		Short: "Replace a note's title or content",
		Long: `Replace a note's content from arguments, --file, or stdin, and
optionally retitle it. Omitting new content keeps the old content.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			note, err := getNote(s, cmd, args[0])
			if err != nil {
				return err
			}

			content := note.Content
			if file != "" || len(args) > 1 {
				content, err = readText(file, args[1:], cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			newTitle := note.Title
			if cmd.Flags().Changed("title") {
				newTitle = title
			}

			updated, err := s.UpdateNote(cmd.Context(), note.ID, newTitle, content)
			if err != nil {
				return WrapExitError(ExitCommandError, "update note", err)
			}

			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			if formatter.JSON() {
				return formatter.Success(updated)
			}
			fmt.Fprintln(cmd.OutOrStdout(), updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new note title")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read new content from file (\"-\" for stdin)")

	return cmd
}

func newNoteRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rm <note-id>",
		Short:         "Delete a note",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			err = s.DeleteNote(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return NewExitError(ExitCommandError, fmt.Sprintf("note %s not found", args[0]))
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "delete note", err)
			}

			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			if formatter.JSON() {
				return formatter.Success(map[string]string{"deleted": args[0]})
			}
			return nil
		},
	}

	return cmd
}

// getNote loads a note, translating ErrNotFound into a command error.
func getNote(s *store.Store, cmd *cobra.Command, id string) (store.Note, error) {
	note, err := s.GetNote(cmd.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return store.Note{}, NewExitError(ExitCommandError, fmt.Sprintf("note %s not found", id))
	}
	if err != nil {
		return store.Note{}, WrapExitError(ExitCommandError, "load note", err)
	}
	return note, nil
}

// writeNoteList renders notes with quick word/syllable stats.
func writeNoteList(opts *RootOptions, cmd *cobra.Command, notes []store.Note) error {
	entries := make([]noteListEntry, len(notes))
	for i, n := range notes {
		entries[i] = noteListEntry{
			ID:        n.ID,
			Title:     n.Title,
			Words:     meter.CountWords(n.Content),
			Syllables: meter.CountText(n.Content),
			UpdatedAt: n.UpdatedAt,
		}
	}

	formatter := newFormatter(opts, cmd.OutOrStdout())
	if formatter.JSON() {
		return formatter.Success(entries)
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		updated := time.Unix(e.UpdatedAt, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(w, "%s  %s  %-24s %d words, %d syllables\n",
			shortID(e.ID), updated, title, e.Words, e.Syllables)
	}
	return nil
}

// shortID abbreviates a UUID for listing; full IDs remain the lookup key.
func shortID(id string) string {
	if i := strings.Index(id, "-"); i > 0 {
		return id[:i]
	}
	return id
}
