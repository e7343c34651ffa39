package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds LLM provider configuration.
type Config struct {
	// Provider selects the backend. Empty means "discover from standard
	// API key variables".
	Provider string

	Anthropic  Endpoint
	OpenAI     Endpoint
	Gemini     Endpoint
	OpenRouter Endpoint
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// Endpoint is the per-provider key, model and optional base URL.
type Endpoint struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns defaults with no provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  Endpoint{Model: "claude-haiku"},
		OpenAI:     Endpoint{Model: "gpt-4o-mini"},
		Gemini:     Endpoint{Model: "gemini-flash"},
		OpenRouter: Endpoint{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads PERSONA_* variables over the defaults. When
// PERSONA_LLM_PROVIDER is unset, the standard vendor key variables are
// probed in DiscoverConfig's order.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Provider = os.Getenv("PERSONA_LLM_PROVIDER")

	envEndpoint(&cfg.Anthropic, "ANTHROPIC")
	envEndpoint(&cfg.OpenAI, "OPENAI")
	envEndpoint(&cfg.Gemini, "GEMINI")
	envEndpoint(&cfg.OpenRouter, "OPENROUTER")

	if cfg.Provider == "" {
		if found, ok := discover(cfg); ok {
			return found
		}
	}
	return cfg
}

func envEndpoint(ep *Endpoint, name string) {
	if k := os.Getenv("PERSONA_" + name + "_API_KEY"); k != "" {
		ep.APIKey = k
	}
	if m := os.Getenv("PERSONA_" + name + "_MODEL"); m != "" {
		ep.Model = m
	}
	if u := os.Getenv("PERSONA_" + name + "_BASE_URL"); u != "" {
		ep.BaseURL = u
	}
}

// DiscoverConfig probes standard API key variables (Anthropic, OpenAI,
// Gemini, OpenRouter) and returns a config for the first one set.
func DiscoverConfig() (Config, bool) {
	return discover(DefaultConfig())
}

func discover(cfg Config) (Config, bool) {
	probes := []struct {
		provider string
		env      string
		ep       *Endpoint
	}{
		{ProviderAnthropic, "ANTHROPIC_API_KEY", &cfg.Anthropic},
		{ProviderOpenAI, "OPENAI_API_KEY", &cfg.OpenAI},
		{ProviderGemini, "GEMINI_API_KEY", &cfg.Gemini},
		{ProviderOpenRouter, "OPENROUTER_API_KEY", &cfg.OpenRouter},
	}
	for _, p := range probes {
		if p.ep.APIKey != "" {
			cfg.Provider = p.provider
			return cfg, true
		}
		if k := os.Getenv(p.env); k != "" {
			p.ep.APIKey = k
			cfg.Provider = p.provider
			return cfg, true
		}
	}
	return cfg, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var ep Endpoint
	switch c.Provider {
	case "":
		return ErrNotConfigured
	case ProviderMock:
		return nil
	case ProviderAnthropic:
		ep = c.Anthropic
	case ProviderOpenAI:
		ep = c.OpenAI
	case ProviderGemini:
		ep = c.Gemini
	case ProviderOpenRouter:
		ep = c.OpenRouter
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if ep.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider", c.Provider)
	}
	return nil
}
