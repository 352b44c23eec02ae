package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newOpenAIImpl(cfg Config) *openaiImpl {
	return &openaiImpl{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  cfg.HTTPClient,
	}
}

// Chat sends a single chat-completion request to the OpenAI API.
func (o *openaiImpl) Chat(ctx context.Context, req *Request) (*Response, error) {
	payload := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserText},
		},
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("openai: API returned no choices")
	}

	// Empty-after-trim content is a failure, not an empty-string success.
	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("openai: API returned empty content")
	}

	return &Response{Content: content}, nil
}

// Model returns the model being used
func (o *openaiImpl) Model() string {
	return o.model
}
