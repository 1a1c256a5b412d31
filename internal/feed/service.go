// Package feed composes the content pipeline behind a single facade: build
// prompt, run the provider failover chain, repair and validate the raw
// output, cache fresh results, and degrade to the cache when generation is
// impossible. It is the only boundary callers depend on.
package feed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gateprep/gatefeed/internal/cache"
	"github.com/gateprep/gatefeed/internal/content"
	"github.com/gateprep/gatefeed/internal/llm"
)

// ErrUnavailable signals that every tier of the degradation ladder is
// exhausted: generation failed (or is unconfigured) and the cache holds no
// entry for the requested kind. Callers present this as a retry-later
// condition, never as content.
var ErrUnavailable = errors.New("content unavailable")

// Service is the content facade.
type Service struct {
	gen   llm.Provider
	cache *cache.Cache
	log   *zap.Logger
}

// New creates a Service. gen may be nil when no provider credential is
// configured; every request then goes straight to the cache tier.
func New(gen llm.Provider, c *cache.Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, cache: c, log: log}
}

// GetContent resolves one content request through the degradation ladder:
// live generation, then a cached prior result, then ErrUnavailable. It
// never returns invalid or partially-filled content.
func (s *Service) GetContent(ctx context.Context, req content.Request) (*content.GeneratedContent, error) {
	ctx = llm.WithRequestID(llm.WithPurpose(ctx, string(req.Kind)+"-gen"))

	if s.gen == nil {
		s.log.Debug("no provider configured, serving from cache",
			zap.String("kind", string(req.Kind)))
		return s.fromCache(req.Kind)
	}

	resp, err := s.gen.Generate(ctx, content.BuildPrompt(req))
	if err != nil {
		// Caller cancellation is not a degradation condition.
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.log.Warn("generation failed, serving from cache",
			zap.String("kind", string(req.Kind)),
			zap.Error(err))
		return s.fromCache(req.Kind)
	}

	gc, err := content.RepairAndParse(resp.Text, req.Kind)
	if err != nil {
		s.log.Warn("generated content failed repair, serving from cache",
			zap.String("kind", string(req.Kind)),
			zap.String("model", resp.Model),
			zap.Error(err))
		return s.fromCache(req.Kind)
	}

	// A cache write failure costs us the fallback copy, not the result.
	if err := s.cache.Add(gc); err != nil {
		s.log.Warn("failed to cache generated content",
			zap.String("kind", string(req.Kind)),
			zap.Error(err))
	}

	return gc, nil
}

func (s *Service) fromCache(kind content.Kind) (*content.GeneratedContent, error) {
	gc, err := s.cache.Sample(kind)
	if err != nil {
		if errors.Is(err, cache.ErrEmpty) {
			return nil, ErrUnavailable
		}
		s.log.Warn("cache sample failed", zap.Error(err))
		return nil, ErrUnavailable
	}
	return gc, nil
}
