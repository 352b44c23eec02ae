package llmprovider

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/bonellirj/EchoDoTTT/config"
	"github.com/bonellirj/EchoDoTTT/pkg/groq"
	"github.com/bonellirj/EchoDoTTT/pkg/openai"
)

// Registry holds the configured providers keyed by id.
// A provider configured without an API key stays registered with a nil
// client so that selecting it is distinguishable from an unknown id.
type Registry struct {
	entries map[string]Provider
	names   []string
}

// InitializeProviders creates a Registry from config.LLMConfig.
// Construction does not fail on a missing API key; the provider is kept
// registered but unusable until a key is deployed.
func InitializeProviders(cfg *config.LLMConfig, httpClient *http.Client) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	reg := &Registry{entries: make(map[string]Provider)}

	for _, p := range cfg.Providers {
		if p.APIKey == "" {
			reg.entries[p.Name] = nil
			reg.names = append(reg.names, p.Name)
			continue
		}

		provider, err := createProvider(p, httpClient)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider %s: %w", p.Name, err)
		}
		reg.entries[p.Name] = provider
		reg.names = append(reg.names, p.Name)
	}

	sort.Strings(reg.names)
	return reg, nil
}

// NewRegistry creates a Registry from already-constructed providers,
// keyed by their Name(). Useful when the caller builds clients itself.
func NewRegistry(providers ...Provider) *Registry {
	reg := &Registry{entries: make(map[string]Provider)}
	for _, p := range providers {
		reg.entries[p.Name()] = p
		reg.names = append(reg.names, p.Name())
	}
	sort.Strings(reg.names)
	return reg
}

// Select returns the provider for the given id.
func (r *Registry) Select(name string) (Provider, error) {
	provider, ok := r.entries[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	if provider == nil {
		return nil, ErrProviderUnavailable
	}
	return provider, nil
}

// Names returns the configured provider ids in sorted order.
func (r *Registry) Names() []string {
	return r.names
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig, httpClient *http.Client) (Provider, error) {
	switch cfg.Name {
	case "groq":
		client, err := groq.New(groq.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.Endpoint,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			HTTPClient:  httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	case "openai":
		client, err := openai.New(openai.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.Endpoint,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			HTTPClient:  httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
