package llm

import "context"

// Provider is the core abstraction for text-generation providers.
// Consumers call Generate with a Request and receive the provider's raw
// output text. Providers make exactly one network call per invocation;
// retry and failover are layered on top (see FailoverProvider).
type Provider interface {
	// Generate sends a prompt to the provider and returns its raw output.
	// The raw text is not guaranteed to be valid JSON even when Request.JSON
	// is set; callers repair and validate it downstream.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name returns the short provider name, e.g. "gemini" or "openai".
	Name() string

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the provider.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// User is the user message. Gatefeed generation is single-turn, so a
	// single user message covers every request shape.
	User string

	// JSON asks the provider to constrain output to JSON using its native
	// mechanism where one exists (response MIME type, response format).
	// Providers without one rely on the prompt's embedded output contract.
	JSON bool

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 2.0.
	Temperature float64
}

// Response holds the provider's output.
type Response struct {
	// Text is the raw generated text, possibly malformed JSON.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
