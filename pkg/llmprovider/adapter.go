package llmprovider

import (
	"context"

	"github.com/bonellirj/EchoDoTTT/pkg/groq"
	"github.com/bonellirj/EchoDoTTT/pkg/openai"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// Chat implements Provider interface
func (a *GroqAdapter) Chat(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := a.client.Chat(ctx, &groq.Request{
		SystemPrompt: systemPrompt,
		UserText:     userText,
	})
	if err != nil {
		return "", &ProviderError{Provider: "groq", Err: err}
	}
	return resp.Content, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Chat implements Provider interface
func (a *OpenAIAdapter) Chat(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := a.client.Chat(ctx, &openai.Request{
		SystemPrompt: systemPrompt,
		UserText:     userText,
	})
	if err != nil {
		return "", &ProviderError{Provider: "openai", Err: err}
	}
	return resp.Content, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
