package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gateprep/gatefeed/internal/store"
)

// LoggingProvider is a decorator that records every provider attempt as a
// generation event and logs its outcome.
type LoggingProvider struct {
	inner Provider
	repo  store.EventRepo
	log   *zap.Logger
}

// WithLogging wraps a Provider with attempt logging. repo may be nil, in
// which case only the zap log is written.
func WithLogging(p Provider, repo store.EventRepo, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, repo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)

	ev := store.GenerationEvent{
		RequestID: RequestIDFrom(ctx),
		Purpose:   PurposeFrom(ctx),
		Provider:  l.inner.Name(),
		Model:     l.inner.ModelID(),
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
		l.log.Warn("generation attempt failed",
			zap.String("provider", ev.Provider),
			zap.String("purpose", ev.Purpose),
			zap.Duration("latency", latency),
			zap.Error(err))
	} else {
		l.log.Debug("generation attempt succeeded",
			zap.String("provider", ev.Provider),
			zap.String("model", ev.Model),
			zap.String("purpose", ev.Purpose),
			zap.Duration("latency", latency),
			zap.Int("output_tokens", ev.OutputTokens))
	}

	// Record the event but never fail the request over bookkeeping.
	if l.repo != nil {
		if logErr := l.repo.AppendGeneration(ctx, ev); logErr != nil {
			l.log.Warn("failed to record generation event", zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) Name() string { return l.inner.Name() }

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
