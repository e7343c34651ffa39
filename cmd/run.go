package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/app"
	"github.com/abhisek/persona/internal/insight"
	"github.com/abhisek/persona/internal/llm"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, startTest bool) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	opts := app.Options{
		LoadBank:  bankLoader(cmd),
		Shuffler:  shuffler(cmd),
		Logger:    logger,
		StartTest: startTest,
	}

	svc, err := newInsightService(cmd, logger)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "LLM provider not configured:", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "AI reflections will be unavailable.")
	}
	opts.Insight = svc

	logger.Info("starting", zap.Bool("start_test", startTest), zap.Bool("insight", svc.Enabled()))
	return app.Run(opts)
}

// newInsightService returns nil without error when no provider is
// configured at all; the TUI then hides reflections.
func newInsightService(cmd *cobra.Command, logger *zap.Logger) (*insight.Service, error) {
	provider, _, err := llm.NewProviderFromEnv(cmd.Context(), logger)
	if errors.Is(err, llm.ErrNotConfigured) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return insight.NewService(provider, insight.DefaultConfig(), logger), nil
}
