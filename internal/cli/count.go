package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cuaderno/internal/meter"
)

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	File string
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count [text...]",
		Short: "Count syllables and name the meter of each line",
		Long: `Count Spanish syllables line by line and name each line's meter.

Text is taken from the arguments, from --file, or from stdin when --file
is "-". Blank lines separate stanzas.

Example:
  cuaderno count "Un ave vuela"
  cuaderno count --file poema.txt
  cat poema.txt | cuaderno count --file -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read text from file (\"-\" for stdin)")

	return cmd
}

func runCount(opts *CountOptions, args []string, cmd *cobra.Command) error {
	text, err := readText(opts.File, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	analysis := meter.Analyze(text)

	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	if formatter.JSON() {
		return formatter.Success(analysis)
	}

	writeAnalysis(cmd.OutOrStdout(), analysis)
	return nil
}

// writeAnalysis renders per-line metrics and totals as a text table.
func writeAnalysis(w io.Writer, a meter.Analysis) {
	for _, line := range a.Lines {
		fmt.Fprintf(w, "%3d  %2d  %-14s %s\n", line.Number, line.Syllables, line.Verse, line.Text)
	}
	fmt.Fprintf(w, "%d line(s), %d syllable(s), %d word(s)\n",
		len(a.Lines), a.TotalSyllables, a.TotalWords)
}

// readText resolves command input: --file wins over args, "-" means stdin.
func readText(file string, args []string, stdin io.Reader) (string, error) {
	switch {
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", WrapExitError(ExitCommandError, "read stdin", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", WrapExitError(ExitCommandError, "read file", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return "", NewExitError(ExitCommandError, "no text given: pass arguments or --file")
}
