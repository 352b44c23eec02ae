package auditlog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	pkgLog "github.com/bonellirj/EchoDoTTT/pkg/log"
)

// Client is the EchoDo Log API client.
type Client struct {
	apiURL        string
	authorization string
	httpClient    *http.Client
	l             pkgLog.Logger
}

// NewClient creates a new audit-log client.
func NewClient(apiURL, authorization string, l pkgLog.Logger) *Client {
	return &Client{
		apiURL:        apiURL,
		authorization: authorization,
		httpClient:    &http.Client{},
		l:             l,
	}
}

// SetAPIURL overrides the Log API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// NewTransactionID returns a fresh transaction id for one request.
func NewTransactionID() string {
	return uuid.NewString()
}

// RequestStart records that request processing began.
func (c *Client) RequestStart(ctx context.Context, transactionID, userText, provider string) {
	c.send(ctx, Event{
		Message:       "Request processing started",
		Status:        200,
		Level:         "info",
		TransactionID: transactionID,
		Meta: map[string]any{
			"userText":    truncate(userText),
			"selectedLLM": provider,
			"action":      "request_start",
		},
	})
}

// ProviderCall records that the LLM provider is being invoked.
func (c *Client) ProviderCall(ctx context.Context, transactionID, provider, model string) {
	c.send(ctx, Event{
		Message:       "LLM processing with " + provider,
		Status:        200,
		Level:         "info",
		TransactionID: transactionID,
		Meta: map[string]any{
			"llmProvider": provider,
			"llmModel":    model,
			"action":      "llm_processing",
		},
	})
}

// RequestSuccess records a successfully produced task.
// taskJSON is the already-serialized task payload.
func (c *Client) RequestSuccess(ctx context.Context, transactionID string, taskJSON string) {
	meta := map[string]any{
		"action": "request_success",
	}
	if taskJSON != "" {
		meta["taskJson"] = taskJSON
	}

	c.send(ctx, Event{
		Message:       "Request processed successfully",
		Status:        200,
		Level:         "info",
		TransactionID: transactionID,
		Meta:          meta,
	})
}

// RequestError records a classified failure.
func (c *Client) RequestError(ctx context.Context, transactionID string, errorCode, errorMessage string, status int, originalText, taskJSON string) {
	meta := map[string]any{
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
		"action":       "request_error",
	}
	if originalText != "" {
		meta["originalText"] = truncate(originalText)
	}
	if taskJSON != "" {
		meta["taskJson"] = taskJSON
	}

	c.send(ctx, Event{
		Message:       "Request processing failed: " + errorMessage,
		Status:        status,
		Level:         "error",
		TransactionID: transactionID,
		Meta:          meta,
	})
}

// send posts one event. Failures are logged locally and swallowed: audit
// logging must never alter the pipeline outcome.
func (c *Client) send(ctx context.Context, event Event) {
	event.System = System
	event.Module = Module
	event.UserID = UserID
	if event.Meta == nil {
		event.Meta = map[string]any{}
	}

	body, err := json.Marshal(event)
	if err != nil {
		c.l.Warnf(ctx, "auditlog: failed to marshal event: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		c.l.Warnf(ctx, "auditlog: failed to create request: %v", err)
		return
	}
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.Warnf(ctx, "auditlog: failed to send event: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.l.Warnf(ctx, "auditlog: Log API returned %d", resp.StatusCode)
	}
}

// truncate caps free-form text at maxTextLen characters.
func truncate(text string) string {
	if len(text) <= maxTextLen {
		return text
	}
	return text[:maxTextLen] + "..."
}
