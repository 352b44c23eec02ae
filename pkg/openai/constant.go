package openai

const (
	// DefaultModel is the default OpenAI chat model
	DefaultModel = "gpt-3.5-turbo"

	// DefaultBaseURL is the OpenAI chat-completions endpoint
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"

	// DefaultTemperature keeps structured extraction output deterministic
	DefaultTemperature = 0.1

	// DefaultMaxTokens bounds the structured reply size
	DefaultMaxTokens = 200
)
