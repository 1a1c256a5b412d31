package llm

import (
	"os"
	"time"
)

// Config holds all provider configuration. A provider with an empty API key
// is simply absent from the failover chain.
type Config struct {
	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig

	Failover FailoverConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// FailoverConfig configures the failover chain.
type FailoverConfig struct {
	// PrimaryAttempts is the retry budget for the first provider in the
	// chain. Backups always get exactly one attempt.
	PrimaryAttempts int

	// BaseDelay is the linear backoff unit between primary attempts:
	// the wait before attempt n+1 is BaseDelay * n.
	BaseDelay time.Duration

	// AttemptTimeout bounds every individual provider call.
	AttemptTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults and no API keys.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Failover: FailoverConfig{
			PrimaryAttempts: 3,
			BaseDelay:       2 * time.Second,
			AttemptTimeout:  30 * time.Second,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values. Keys are read from GATEFEED_* variables first,
// then from the providers' conventional variable names.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Gemini.APIKey = firstEnv("GATEFEED_GEMINI_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("GATEFEED_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	cfg.OpenAI.APIKey = firstEnv("GATEFEED_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("GATEFEED_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("GATEFEED_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Anthropic.APIKey = firstEnv("GATEFEED_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("GATEFEED_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenRouter.APIKey = firstEnv("GATEFEED_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	if m := os.Getenv("GATEFEED_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if d, err := time.ParseDuration(os.Getenv("GATEFEED_ATTEMPT_TIMEOUT")); err == nil && d > 0 {
		cfg.Failover.AttemptTimeout = d
	}

	return cfg
}

// Configured reports whether at least one provider has an API key. When
// false, the content service skips generation and serves from cache only.
func (c Config) Configured() bool {
	return c.Gemini.APIKey != "" ||
		c.OpenAI.APIKey != "" ||
		c.Anthropic.APIKey != "" ||
		c.OpenRouter.APIKey != ""
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
