package llm

import (
	"fmt"
	"strings"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
// The failover layer never retries the same provider after one of these.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates a transient failure: the provider is
// down, unreachable, or the request timed out. Eligible for bounded retry
// against the primary provider.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider's envelope was malformed or the
// request was rejected with a non-retryable status. The generated text inside
// a well-formed envelope is not this error's concern; repairing that is the
// content layer's job.
type ErrInvalidResponse struct {
	Body string
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid provider response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrAllProvidersFailed aggregates the last error observed per provider
// after the whole failover chain has been exhausted.
type ErrAllProvidersFailed struct {
	// Last maps provider name to the final error it returned.
	Last map[string]error
}

func (e *ErrAllProvidersFailed) Error() string {
	if len(e.Last) == 0 {
		return "no providers configured"
	}
	parts := make([]string, 0, len(e.Last))
	for name, err := range e.Last {
		parts = append(parts, fmt.Sprintf("%s: %v", name, err))
	}
	return "all providers failed: " + strings.Join(parts, "; ")
}
