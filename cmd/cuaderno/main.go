// Command cuaderno is an offline verse notebook: it counts Spanish
// syllables, names verse meters, checks poems against classic forms and
// keeps notes in a local SQLite file.
package main

import (
	"fmt"
	"os"

	"cuaderno/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
