package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cuaderno/internal/meter"
	"cuaderno/internal/store"
)

// scanResult pairs a stored note with its metrical analysis.
type scanResult struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Analysis meter.Analysis `json:"analysis"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <note-id>",
		Short: "Analyze the meter of a stored note",
		Long: `Analyze a stored note verse by verse.

Loads the note from the local database and prints syllable counts, word
counts and the metrical name of every line.

Example:
  cuaderno scan 2f9f3c3a-... --db ./notes.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScan(opts *RootOptions, noteID string, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	note, err := s.GetNote(cmd.Context(), noteID)
	if errors.Is(err, store.ErrNotFound) {
		return NewExitError(ExitCommandError, fmt.Sprintf("note %s not found", noteID))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "load note", err)
	}

	result := scanResult{
		ID:       note.ID,
		Title:    note.Title,
		Analysis: meter.Analyze(note.Content),
	}

	formatter := newFormatter(opts, cmd.OutOrStdout())
	if formatter.JSON() {
		return formatter.Success(result)
	}

	if note.Title != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", note.Title)
	}
	writeAnalysis(cmd.OutOrStdout(), result.Analysis)
	return nil
}
