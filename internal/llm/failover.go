package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// FailoverProvider drives an ordered chain of providers. The first provider
// is the primary and gets a bounded retry budget with linear backoff; a rate
// limit skips the remaining retries and advances the chain with zero delay.
// Backup providers get exactly one attempt each.
type FailoverProvider struct {
	chain []Provider
	cfg   FailoverConfig
	log   *zap.Logger
}

// NewFailover creates a FailoverProvider over the given chain, in priority
// order. The chain may be empty; Generate then fails with
// ErrAllProvidersFailed without any network call.
func NewFailover(chain []Provider, cfg FailoverConfig, log *zap.Logger) *FailoverProvider {
	if log == nil {
		log = zap.NewNop()
	}
	return &FailoverProvider{chain: chain, cfg: cfg, log: log}
}

func (f *FailoverProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	last := make(map[string]error, len(f.chain))

	for i, p := range f.chain {
		attempts := 1
		if i == 0 && f.cfg.PrimaryAttempts > 1 {
			attempts = f.cfg.PrimaryAttempts
		}

		for attempt := 1; attempt <= attempts; attempt++ {
			resp, err := f.attempt(ctx, p, req)
			if err == nil {
				return resp, nil
			}
			last[p.Name()] = err

			// Caller gave up; stop the whole chain.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			var rl *ErrRateLimit
			if errors.As(err, &rl) {
				f.log.Warn("provider rate limited, failing over",
					zap.String("provider", p.Name()))
				break
			}

			f.log.Warn("provider attempt failed",
				zap.String("provider", p.Name()),
				zap.Int("attempt", attempt),
				zap.Error(err))

			if attempt < attempts {
				wait := f.cfg.BaseDelay * time.Duration(attempt)
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(wait):
				}
			}
		}
	}

	err := &ErrAllProvidersFailed{Last: last}
	f.log.Error("failover chain exhausted", zap.Error(err))
	return nil, err
}

func (f *FailoverProvider) attempt(ctx context.Context, p Provider, req Request) (*Response, error) {
	if f.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.AttemptTimeout)
		defer cancel()
	}
	return p.Generate(ctx, req)
}

func (f *FailoverProvider) Name() string { return "failover" }

func (f *FailoverProvider) ModelID() string {
	if len(f.chain) == 0 {
		return "none"
	}
	return f.chain[0].ModelID()
}
