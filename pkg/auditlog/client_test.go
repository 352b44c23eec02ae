package auditlog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bonellirj/EchoDoTTT/pkg/auditlog"
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

func TestClient_Events(t *testing.T) {
	var received []auditlog.Event
	var lastAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		var ev auditlog.Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		received = append(received, ev)
	}))
	defer ts.Close()

	client := auditlog.NewClient(ts.URL, "test-auth-token", &mockLogger{})
	ctx := context.Background()

	t.Run("Fixed Fields Stamped", func(t *testing.T) {
		received = nil
		client.RequestStart(ctx, "tx-1", "buy milk tomorrow", "groq")

		if len(received) != 1 {
			t.Fatalf("expected 1 event, got %d", len(received))
		}
		ev := received[0]
		if ev.System != "EchoDo" || ev.Module != "TTT" || ev.UserID != "NA" {
			t.Errorf("unexpected identity fields: %+v", ev)
		}
		if ev.TransactionID != "tx-1" || ev.Level != "info" || ev.Status != 200 {
			t.Errorf("unexpected event fields: %+v", ev)
		}
		if ev.Meta["userText"] != "buy milk tomorrow" || ev.Meta["selectedLLM"] != "groq" {
			t.Errorf("unexpected meta: %v", ev.Meta)
		}
		if lastAuth != "test-auth-token" {
			t.Errorf("unexpected Authorization header: %s", lastAuth)
		}
	})

	t.Run("Provider Call Event", func(t *testing.T) {
		received = nil
		client.ProviderCall(ctx, "tx-2", "openai", "gpt-3.5-turbo")

		ev := received[0]
		if ev.Message != "LLM processing with openai" {
			t.Errorf("unexpected message: %s", ev.Message)
		}
		if ev.Meta["llmModel"] != "gpt-3.5-turbo" {
			t.Errorf("unexpected meta: %v", ev.Meta)
		}
	})

	t.Run("Error Event", func(t *testing.T) {
		received = nil
		client.RequestError(ctx, "tx-3", "past_due_date", "Due date is in the past", 422, "remind me yesterday", `{"title":"x"}`)

		ev := received[0]
		if ev.Level != "error" || ev.Status != 422 {
			t.Errorf("unexpected event fields: %+v", ev)
		}
		if ev.Meta["errorCode"] != "past_due_date" || ev.Meta["originalText"] != "remind me yesterday" {
			t.Errorf("unexpected meta: %v", ev.Meta)
		}
		if ev.Meta["taskJson"] != `{"title":"x"}` {
			t.Errorf("unexpected task payload: %v", ev.Meta["taskJson"])
		}
	})

	t.Run("Long Text Truncated", func(t *testing.T) {
		received = nil
		long := strings.Repeat("a", 600)
		client.RequestStart(ctx, "tx-4", long, "groq")

		got, _ := received[0].Meta["userText"].(string)
		if len(got) != 503 || !strings.HasSuffix(got, "...") {
			t.Errorf("expected 500-char truncation with ellipsis, got len %d", len(got))
		}
	})
}

func TestClient_FailuresSwallowed(t *testing.T) {
	ctx := context.Background()

	t.Run("Unreachable API", func(t *testing.T) {
		client := auditlog.NewClient("http://127.0.0.1:1", "auth", &mockLogger{})
		// Must not panic or block the caller.
		client.RequestStart(ctx, "tx-1", "text", "groq")
	})

	t.Run("Non 200 Response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		client := auditlog.NewClient(ts.URL, "auth", &mockLogger{})
		client.RequestSuccess(ctx, "tx-2", `{"title":"x"}`)
	})
}

func TestNewTransactionID(t *testing.T) {
	a, b := auditlog.NewTransactionID(), auditlog.NewTransactionID()
	if a == "" || a == b {
		t.Errorf("expected unique non-empty ids, got %q and %q", a, b)
	}
}
