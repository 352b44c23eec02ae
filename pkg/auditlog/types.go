package auditlog

import "context"

// Fixed fields stamped on every event.
const (
	System = "EchoDo"
	Module = "TTT"
	UserID = "NA"
)

// maxTextLen caps free-form text carried in event metadata.
const maxTextLen = 500

// Event is the wire payload for the EchoDo Log API.
type Event struct {
	Message       string         `json:"message"`
	Status        int            `json:"status"`
	Level         string         `json:"level"`
	TransactionID string         `json:"transactionId"`
	System        string         `json:"system"`
	Module        string         `json:"module"`
	UserID        string         `json:"userId"`
	Meta          map[string]any `json:"meta"`
}

// Logger emits audit events at pipeline checkpoints. Implementations are
// best-effort: a failed emit must never abort request processing.
type Logger interface {
	RequestStart(ctx context.Context, transactionID, userText, provider string)
	ProviderCall(ctx context.Context, transactionID, provider, model string)
	RequestSuccess(ctx context.Context, transactionID string, taskJSON string)
	RequestError(ctx context.Context, transactionID string, errorCode, errorMessage string, status int, originalText, taskJSON string)
}

// Nop is a Logger that discards all events.
type Nop struct{}

func (Nop) RequestStart(ctx context.Context, transactionID, userText, provider string) {}
func (Nop) ProviderCall(ctx context.Context, transactionID, provider, model string)    {}
func (Nop) RequestSuccess(ctx context.Context, transactionID string, taskJSON string)  {}
func (Nop) RequestError(ctx context.Context, transactionID string, errorCode, errorMessage string, status int, originalText, taskJSON string) {
}
