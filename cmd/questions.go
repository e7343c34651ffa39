package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/questionbank"
)

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question list",
		Long:  "Print the questions in a shuffled order (reproducible with --seed) or in bank order with --ordered.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := bankLoader(cmd)()
			if err != nil {
				return err
			}

			ordered, _ := cmd.Flags().GetBool("ordered")
			var qs []questionbank.Question
			if ordered {
				qs = bank.Questions()
			} else {
				qs = shuffler(cmd).Shuffle(bank)
			}

			w := out(cmd)
			fmt.Fprintf(w, "Question bank %s (%d questions)\n", bank.Version(), bank.Len())
			fmt.Fprintln(w, strings.Repeat("─", 60))
			for i, q := range qs {
				fmt.Fprintf(w, "%2d. [#%d %s] %s\n", i+1, q.ID, q.Dichotomy(), q.Text)
				for j, o := range q.Options {
					fmt.Fprintf(w, "      %c) %s (%s)\n", 'a'+j, o.Text, o.Letter)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("ordered", false, "Print questions in bank order instead of shuffling")
	return cmd
}
