package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/questionbank"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out(cmd), "persona", version)
			if bank, err := questionbank.Default(); err == nil {
				fmt.Fprintln(out(cmd), "question bank", bank.Version())
			}
		},
	}
}
