package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsOutcomesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockOutcome{Text: `first`, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockOutcome{Text: `second`},
	)

	resp1, err := mock.Generate(context.Background(), Request{User: "one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first" {
		t.Fatalf("expected 'first', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{User: "two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second" {
		t.Fatalf("expected 'second', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockOutcome{Text: `ok`})

	_, _ = mock.Generate(context.Background(), Request{System: "sys", User: "hello"})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if mock.Calls[0].User != "hello" {
		t.Fatalf("expected user 'hello', got %q", mock.Calls[0].User)
	}
}

func TestMockProvider_Named(t *testing.T) {
	mock := NewMockProvider().Named("gemini")
	if mock.Name() != "gemini" {
		t.Fatalf("expected 'gemini', got %q", mock.Name())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if p := PurposeFrom(ctx); p != "question-gen" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if id := RequestIDFrom(ctx); id != "" {
		t.Fatalf("expected empty request ID, got %q", id)
	}

	ctx = WithRequestID(ctx)
	if id := RequestIDFrom(ctx); id == "" {
		t.Fatal("expected a request ID to be set")
	}
}

func TestConfigFromEnv_KeyPriority(t *testing.T) {
	t.Setenv("GATEFEED_GEMINI_API_KEY", "prefixed")
	t.Setenv("GEMINI_API_KEY", "bare")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "prefixed" {
		t.Fatalf("expected GATEFEED_ prefixed key to win, got %q", cfg.Gemini.APIKey)
	}
	if !cfg.Configured() {
		t.Fatal("expected Configured() to be true")
	}
}

func TestConfig_NotConfiguredWithoutKeys(t *testing.T) {
	if DefaultConfig().Configured() {
		t.Fatal("expected default config to be unconfigured")
	}
}
