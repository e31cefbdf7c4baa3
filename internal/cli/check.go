package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"cuaderno/internal/forms"
	"cuaderno/internal/meter"
	"cuaderno/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Form     string
	File     string
	FormsDir string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check (<note-id> | --file f)",
		Short: "Check a poem against a verse form",
		Long: `Check that a poem fits a classic verse form.

The poem comes from a stored note or from --file. The form is one of the
built-in catalog (see "cuaderno forms") or of a user catalog loaded with
--forms-dir. Exits 1 when the poem does not fit.

Example:
  cuaderno check --form soneto --file soneto.txt
  cuaderno check --form copla 2f9f3c3a-...`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Form, "form", "", "verse form to check against (required)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read poem from file (\"-\" for stdin)")
	cmd.Flags().StringVar(&opts.FormsDir, "forms-dir", "", "directory with additional .cue form definitions")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	catalog, err := loadCatalog(opts.FormsDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "load verse forms", err)
	}

	form, ok := catalog.Get(opts.Form)
	if !ok {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown form %q: known forms are %v", opts.Form, catalog.Names()))
	}

	text, err := checkInput(opts, args, cmd)
	if err != nil {
		return err
	}

	report := forms.Check(form, meter.Analyze(text))
	slog.Debug("checked poem", "form", form.Name, "lines", report.LineCount, "ok", report.OK)

	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if formatter.JSON() {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
		for _, d := range report.Deviations {
			fmt.Fprintf(cmd.OutOrStdout(), "  line %d: %d syllables, want %d\n", d.Number, d.Got, d.Want)
		}
	}

	if !report.OK {
		return NewExitError(ExitFailure, fmt.Sprintf("poem does not fit %s", form.Name))
	}
	return nil
}

// checkInput resolves the poem text: --file wins, otherwise the argument
// is a note ID.
func checkInput(opts *CheckOptions, args []string, cmd *cobra.Command) (string, error) {
	if opts.File != "" {
		return readText(opts.File, nil, cmd.InOrStdin())
	}
	if len(args) == 0 {
		return "", NewExitError(ExitCommandError, "no poem given: pass a note ID or --file")
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return "", err
	}
	defer s.Close()

	note, err := s.GetNote(cmd.Context(), args[0])
	if errors.Is(err, store.ErrNotFound) {
		return "", NewExitError(ExitCommandError, fmt.Sprintf("note %s not found", args[0]))
	}
	if err != nil {
		return "", WrapExitError(ExitCommandError, "load note", err)
	}
	return note.Content, nil
}

// loadCatalog returns the built-in catalog, extended from dir when given.
func loadCatalog(dir string) (*forms.Catalog, error) {
	if dir == "" {
		return forms.Default()
	}
	return forms.LoadDir(dir)
}
