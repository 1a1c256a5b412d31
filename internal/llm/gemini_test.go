package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // passthrough
	}

	for _, tt := range tests {
		if got := resolveModel(tt.name, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want any
	}{
		{"rate limit", &genai.APIError{Code: http.StatusTooManyRequests}, new(*ErrRateLimit)},
		{"server error", &genai.APIError{Code: http.StatusInternalServerError}, new(*ErrProviderUnavailable)},
		{"bad request", &genai.APIError{Code: http.StatusBadRequest}, new(*ErrInvalidResponse)},
		{"deadline", context.DeadlineExceeded, new(*ErrProviderUnavailable)},
		{"unknown", errors.New("connection reset"), new(*ErrProviderUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapGeminiError(tt.in)
			if !errors.As(got, tt.want) {
				t.Fatalf("mapGeminiError(%v) = %T, want %T", tt.in, got, tt.want)
			}
		})
	}
}
