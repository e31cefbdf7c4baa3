package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cuaderno/internal/forms"
)

// FormsOptions holds flags for the forms command.
type FormsOptions struct {
	*RootOptions
	FormsDir string
}

// NewFormsCommand creates the forms command.
func NewFormsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "forms",
		Short: "List available verse forms",
		Long: `List the verse forms available to "cuaderno check".

The built-in catalog covers soneto, copla, seguidilla, decima, haiku and
romance; --forms-dir layers user-defined .cue forms on top.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForms(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.FormsDir, "forms-dir", "", "directory with additional .cue form definitions")

	return cmd
}

func runForms(opts *FormsOptions, cmd *cobra.Command) error {
	catalog, err := loadCatalog(opts.FormsDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "load verse forms", err)
	}

	all := catalog.All()

	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if formatter.JSON() {
		return formatter.Success(all)
	}

	w := cmd.OutOrStdout()
	for _, f := range all {
		fmt.Fprintf(w, "%-12s %-12s %s\n", f.Name, formShape(f), f.Description)
	}
	return nil
}

// formShape renders a form's constraints compactly: "14x11", "5-7-5",
// "any x8" or "free".
func formShape(f forms.Form) string {
	if len(f.Pattern) > 0 {
		parts := make([]string, len(f.Pattern))
		for i, n := range f.Pattern {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return strings.Join(parts, "-")
	}
	switch {
	case f.Lines > 0 && f.Meter > 0:
		return fmt.Sprintf("%dx%d", f.Lines, f.Meter)
	case f.Meter > 0:
		return fmt.Sprintf("any x%d", f.Meter)
	case f.Lines > 0:
		return fmt.Sprintf("%d lines", f.Lines)
	}
	return "free"
}
