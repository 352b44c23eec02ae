package usecase

import (
	"context"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock provider for testing
type mockProvider struct {
	name     string
	model    string
	chatFunc func(ctx context.Context, systemPrompt, userText string) (string, error)
}

func (m *mockProvider) Chat(ctx context.Context, systemPrompt, userText string) (string, error) {
	return m.chatFunc(ctx, systemPrompt, userText)
}

func (m *mockProvider) Name() string {
	if m.name == "" {
		return "groq"
	}
	return m.name
}

func (m *mockProvider) Model() string {
	if m.model == "" {
		return "llama3-8b-8192"
	}
	return m.model
}

// Mock audit logger recording the events it receives
type mockAudit struct {
	starts    int
	calls     int
	successes int

	lastSuccessJSON string

	errorCode    string
	errorMessage string
	errorStatus  int
	originalText string
	taskJSON     string
}

func (m *mockAudit) RequestStart(ctx context.Context, transactionID, userText, provider string) {
	m.starts++
}

func (m *mockAudit) ProviderCall(ctx context.Context, transactionID, provider, model string) {
	m.calls++
}

func (m *mockAudit) RequestSuccess(ctx context.Context, transactionID string, taskJSON string) {
	m.successes++
	m.lastSuccessJSON = taskJSON
}

func (m *mockAudit) RequestError(ctx context.Context, transactionID string, errorCode, errorMessage string, status int, originalText, taskJSON string) {
	m.errorCode = errorCode
	m.errorMessage = errorMessage
	m.errorStatus = status
	m.originalText = originalText
	m.taskJSON = taskJSON
}
