package cmd

import "github.com/spf13/cobra"

func newTakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take",
		Short: "Start the questionnaire immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, true)
		},
	}
}
