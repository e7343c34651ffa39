package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/logging"
	"github.com/abhisek/persona/internal/questionbank"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "persona",
		Short: "Personality type questionnaire",
		Long:  "Persona is a terminal questionnaire that resolves your answers into one of the 16 four-letter personality types.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, false)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().String("bank", "", "Path to a question bank YAML file (defaults to the built-in bank)")
	root.PersistentFlags().String("log-file", "", "Path to the log file (overrides PERSONA_LOG_FILE)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	root.PersistentFlags().Uint64("seed", 0, "Seed the question shuffle for a reproducible order")

	root.AddCommand(
		newTakeCmd(),
		newQuestionsCmd(),
		newScoreCmd(),
		newTypeCmd(),
		newTypesCmd(),
		newLLMCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// newLogger builds the file logger from --log-file and --debug.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(logging.Options{Path: path, Debug: debug})
}

// bankLoader returns the --bank file loader, or the embedded bank.
func bankLoader(cmd *cobra.Command) func() (*questionbank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return questionbank.Default
	}
	return func() (*questionbank.Bank, error) {
		return questionbank.LoadFile(path)
	}
}

// shuffler honours --seed only when it was given, so 0 is a usable seed.
func shuffler(cmd *cobra.Command) *questionbank.Shuffler {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return questionbank.NewSeededShuffler(seed)
	}
	return questionbank.NewShuffler()
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
