package llmprovider_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/bonellirj/EchoDoTTT/config"
	"github.com/bonellirj/EchoDoTTT/pkg/groq"
	"github.com/bonellirj/EchoDoTTT/pkg/llmprovider"
)

// Mock groq client for adapter tests
type mockGroqClient struct {
	response *groq.Response
	err      error
}

func (m *mockGroqClient) Chat(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	return m.response, m.err
}

func (m *mockGroqClient) Model() string {
	return "groq-test"
}

func TestInitializeProviders(t *testing.T) {
	t.Run("Nil Config Error", func(t *testing.T) {
		if _, err := llmprovider.InitializeProviders(nil, nil); err == nil {
			t.Errorf("expected error for nil config")
		}
	})

	t.Run("Empty Providers Error", func(t *testing.T) {
		_, err := llmprovider.InitializeProviders(&config.LLMConfig{}, nil)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Unknown Provider Name Error", func(t *testing.T) {
		_, err := llmprovider.InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "claude", APIKey: "k"}},
		}, nil)
		if err == nil {
			t.Errorf("expected error for unknown provider name")
		}
	})

	t.Run("Keyed Providers Selectable", func(t *testing.T) {
		reg, err := llmprovider.InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "openai", APIKey: "k1"},
				{Name: "groq", APIKey: "k2"},
			},
		}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p, err := reg.Select("groq")
		if err != nil {
			t.Fatalf("unexpected select error: %v", err)
		}
		if p.Name() != "groq" {
			t.Errorf("unexpected provider: %s", p.Name())
		}

		if got := reg.Names(); !reflect.DeepEqual(got, []string{"groq", "openai"}) {
			t.Errorf("expected sorted names, got %v", got)
		}
	})

	t.Run("Keyless Provider Registered But Unavailable", func(t *testing.T) {
		reg, err := llmprovider.InitializeProviders(&config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "groq"}},
		}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := reg.Select("groq"); !errors.Is(err, llmprovider.ErrProviderUnavailable) {
			t.Errorf("expected ErrProviderUnavailable, got %v", err)
		}
		if _, err := reg.Select("claude"); !errors.Is(err, llmprovider.ErrUnknownProvider) {
			t.Errorf("expected ErrUnknownProvider, got %v", err)
		}
	})
}

func TestGroqAdapter(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		adapter := llmprovider.NewGroqAdapter(&mockGroqClient{
			response: &groq.Response{Content: "mocked reply"},
		})

		got, err := adapter.Chat(context.Background(), "system", "user")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "mocked reply" {
			t.Errorf("unexpected reply: %s", got)
		}
		if adapter.Name() != "groq" || adapter.Model() != "groq-test" {
			t.Errorf("unexpected identity: %s/%s", adapter.Name(), adapter.Model())
		}
	})

	t.Run("Error Wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		adapter := llmprovider.NewGroqAdapter(&mockGroqClient{err: cause})

		_, err := adapter.Chat(context.Background(), "system", "user")
		var pErr *llmprovider.ProviderError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected ProviderError, got %v", err)
		}
		if pErr.Provider != "groq" || !errors.Is(err, cause) {
			t.Errorf("unexpected wrapped error: %v", pErr)
		}
	})
}

func TestNewRegistry(t *testing.T) {
	adapter := llmprovider.NewGroqAdapter(&mockGroqClient{
		response: &groq.Response{Content: "ok"},
	})
	reg := llmprovider.NewRegistry(adapter)

	p, err := reg.Select("groq")
	if err != nil {
		t.Fatalf("unexpected select error: %v", err)
	}
	if p != llmprovider.Provider(adapter) {
		t.Errorf("expected the registered adapter back")
	}
}
