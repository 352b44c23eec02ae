package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newGroqImpl creates a new Groq implementation
func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  cfg.HTTPClient,
	}
}

// Chat sends a single chat-completion request to the Groq API.
// It makes exactly one attempt; an empty-after-trim reply is a failure,
// never an empty-string success.
func (g *groqImpl) Chat(ctx context.Context, req *Request) (*Response, error) {
	payload := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserText},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("groq: failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("groq: API returned no choices")
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("groq: API returned empty content")
	}

	return &Response{Content: content}, nil
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}
