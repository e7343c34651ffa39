package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// NewProvider builds the provider named by cfg.Provider, wrapped as
// caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		mock := NewMockProvider()
		if content := os.Getenv("PERSONA_LLM_MOCK_RESPONSE"); content != "" {
			mock.SetFallback(MockResponse{Content: json.RawMessage(content)})
		}
		base = mock
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, logger)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration with ConfigFromEnv. It returns
// ErrNotConfigured when nothing is set, which callers treat as "feature off".
func NewProviderFromEnv(ctx context.Context, logger *zap.Logger) (Provider, Config, error) {
	cfg := ConfigFromEnv()
	p, err := NewProvider(ctx, cfg, logger)
	return p, cfg, err
}
