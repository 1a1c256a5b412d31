package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gateprep/gatefeed/internal/store"
)

// NewChain builds the failover chain from configuration, in priority order:
// Gemini, then OpenAI, Anthropic, and OpenRouter as backups. Providers
// without an API key are left out of the chain entirely, so a missing
// credential never counts as a failed attempt. Every provider in the chain
// is wrapped with attempt logging.
func NewChain(ctx context.Context, cfg Config, repo store.EventRepo, log *zap.Logger) (*FailoverProvider, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var chain []Provider

	if cfg.Gemini.APIKey != "" {
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		chain = append(chain, WithLogging(p, repo, log))
	}

	if cfg.OpenAI.APIKey != "" {
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
		chain = append(chain, WithLogging(p, repo, log))
	}

	if cfg.Anthropic.APIKey != "" {
		p, err := NewAnthropicProvider(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("initializing anthropic provider: %w", err)
		}
		chain = append(chain, WithLogging(p, repo, log))
	}

	if cfg.OpenRouter.APIKey != "" {
		p, err := NewOpenRouterProvider(cfg.OpenRouter)
		if err != nil {
			return nil, fmt.Errorf("initializing openrouter provider: %w", err)
		}
		chain = append(chain, WithLogging(p, repo, log))
	}

	return NewFailover(chain, cfg.Failover, log), nil
}
