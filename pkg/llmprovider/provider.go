package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Chat sends a single system/user chat-completion request and returns
	// the raw reply text. One attempt, no retries.
	Chat(ctx context.Context, systemPrompt, userText string) (string, error)

	// Name returns the provider name (e.g., "groq", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}
