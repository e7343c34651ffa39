package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/persona/internal/llm"
)

func newLLMCmd() *cobra.Command {
	llmCmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect the LLM provider used for reflections",
	}
	llmCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which provider and model are configured",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printLLMStatus(cmd, llm.ConfigFromEnv())
		},
	})
	return llmCmd
}

// printLLMStatus never prints key material.
func printLLMStatus(cmd *cobra.Command, cfg llm.Config) {
	w := out(cmd)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(w, "Reflections disabled:", err)
		return
	}

	ep, ok := map[string]llm.Endpoint{
		llm.ProviderAnthropic:  cfg.Anthropic,
		llm.ProviderOpenAI:     cfg.OpenAI,
		llm.ProviderGemini:     cfg.Gemini,
		llm.ProviderOpenRouter: cfg.OpenRouter,
	}[cfg.Provider]

	fmt.Fprintf(w, "Provider:  %s\n", cfg.Provider)
	if !ok {
		return
	}
	fmt.Fprintf(w, "Model:     %s\n", ep.Model)
	if ep.BaseURL != "" {
		fmt.Fprintf(w, "Base URL:  %s\n", ep.BaseURL)
	}
	fmt.Fprintf(w, "Retries:   %d attempts, timeout %s\n", cfg.Retry.MaxAttempts, cfg.Timeout)
}
