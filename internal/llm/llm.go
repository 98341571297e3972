package llm

import "context"

// Client abstracts generative-language providers.
type Client interface {
	// Generate sends the prompt and returns the model's raw text reply.
	Generate(ctx context.Context, prompt string) (string, error)
}
