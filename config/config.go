package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Text-to-task specifics
	PromptStore PromptStoreConfig
	AuditLog    AuditLogConfig

	// LLM providers
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PromptStoreConfig configures the DynamoDB-backed system prompt store.
type PromptStoreConfig struct {
	TableName string
	PromptID  string
	Region    string
	CacheSize int
}

// AuditLogConfig configures the remote EchoDo audit-log client.
type AuditLogConfig struct {
	URL           string
	Authorization string
	Enabled       bool
}

// LLMConfig holds the configured LLM providers.
type LLMConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for a single LLM provider.
// A provider with an empty APIKey is still registered but unusable;
// selecting it fails with llm_unavailable instead of a startup error.
type ProviderConfig struct {
	Name        string  `yaml:"name"`
	Endpoint    string  `yaml:"endpoint"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Prompt store
	cfg.PromptStore.TableName = viper.GetString("prompt_store.table_name")
	cfg.PromptStore.PromptID = viper.GetString("prompt_store.prompt_id")
	cfg.PromptStore.Region = viper.GetString("prompt_store.region")
	cfg.PromptStore.CacheSize = viper.GetInt("prompt_store.cache_size")
	if tableName := viper.GetString("dynamodb_table_name"); tableName != "" {
		cfg.PromptStore.TableName = tableName
	}
	if promptID := viper.GetString("dynamodb_prompt_id"); promptID != "" {
		cfg.PromptStore.PromptID = promptID
	}

	// Audit log
	cfg.AuditLog.URL = viper.GetString("audit_log.url")
	cfg.AuditLog.Authorization = expandEnvVar(viper.GetString("audit_log.authorization"))
	cfg.AuditLog.Enabled = viper.GetBool("audit_log.enabled")
	if auth := viper.GetString("audit_log_authorization"); auth != "" {
		cfg.AuditLog.Authorization = auth
	}

	// LLM providers
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:        getStringFromMap(providerMap, "name"),
						Endpoint:    getStringFromMap(providerMap, "endpoint"),
						APIKey:      expandEnvVar(getStringFromMap(providerMap, "api_key")),
						Model:       getStringFromMap(providerMap, "model"),
						Temperature: getFloatFromMap(providerMap, "temperature"),
						MaxTokens:   getIntFromMap(providerMap, "max_tokens"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without an llm.providers section, fall back to the two built-in
	// providers with keys taken from the environment.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = defaultProviders()
	}

	applyProviderDefaults(cfg.LLM.Providers)

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("prompt_store.table_name", "echodo-prompts")
	viper.SetDefault("prompt_store.prompt_id", "ttt-system-prompt")
	viper.SetDefault("prompt_store.cache_size", 8)

	viper.SetDefault("audit_log.url", "https://api.echodo.chat/Log")
	viper.SetDefault("audit_log.enabled", true)
}

// defaultProviders returns the built-in groq/openai provider set.
func defaultProviders() []ProviderConfig {
	return []ProviderConfig{
		{Name: "groq", APIKey: os.Getenv("GROQ_API_KEY")},
		{Name: "openai", APIKey: os.Getenv("OPENAI_API_KEY")},
	}
}

// applyProviderDefaults fills endpoint/model/tuning defaults per provider name.
func applyProviderDefaults(providers []ProviderConfig) {
	for i := range providers {
		p := &providers[i]
		switch p.Name {
		case "groq":
			if p.Endpoint == "" {
				p.Endpoint = "https://api.groq.com/openai/v1/chat/completions"
			}
			if p.Model == "" {
				p.Model = "llama3-8b-8192"
			}
		case "openai":
			if p.Endpoint == "" {
				p.Endpoint = "https://api.openai.com/v1/chat/completions"
			}
			if p.Model == "" {
				p.Model = "gpt-3.5-turbo"
			}
		}
		if p.Temperature == 0 {
			p.Temperature = 0.1
		}
		if p.MaxTokens == 0 {
			p.MaxTokens = 200
		}
	}
}

// validateLLMConfig validates the LLM configuration.
// A missing API key is allowed (the provider stays configured but unusable);
// a missing name, endpoint or model is not.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	seen := make(map[string]bool)
	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Endpoint == "" {
			return fmt.Errorf("provider %s: endpoint is required", provider.Name)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if seen[provider.Name] {
			return fmt.Errorf("provider %s: duplicate provider name", provider.Name)
		}
		seen[provider.Name] = true

		if provider.APIKey == "" {
			fmt.Printf("Warning: provider %s has no API key configured\n", provider.Name)
		}
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getFloatFromMap(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok {
		if f, ok := val.(float64); ok {
			return f
		}
		if i, ok := val.(int); ok {
			return float64(i)
		}
	}
	return 0
}
