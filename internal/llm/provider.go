package llm

import "context"

// Provider is the abstraction over the language-model service.
// The service accepts a single text prompt and returns a single
// free-form text response; no schema is enforced at this boundary,
// which is why the coerce package exists downstream.
type Provider interface {
	// Generate sends one prompt and blocks until the full response
	// arrives. No retries, no streaming.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// Prompt is the full user prompt for this single-turn call.
	Prompt string

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw, free-form response body.
	Text string

	// Model is the actual model that served the request.
	Model string

	// Usage reports token consumption for this request.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
